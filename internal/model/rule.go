package model

// Rule auto-categorizes imported transactions: any transaction whose
// description equals Match exactly is assigned Category, provided it has not
// been categorized already.
type Rule struct {
	ID       int64
	Name     string
	Match    string
	Category string
}
