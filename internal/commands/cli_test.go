package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "tracker-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "tracker")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/tracker")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runTracker(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "TRACKER_HOME="+home)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// initHome initializes a fresh tracker home and returns its path.
func initHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	out, err := runTracker(t, home, "init")
	require.NoError(t, err, out)
	return home
}

func TestInit_CreatesConfigAndDatabase(t *testing.T) {
	home := initHome(t)

	data, err := os.ReadFile(filepath.Join(home, "tracker.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "database: tracker.db")

	_, err = os.Stat(filepath.Join(home, "data", "tracker.db"))
	require.NoError(t, err, "database should exist after init")
}

func TestInit_Idempotent(t *testing.T) {
	home := initHome(t)
	out, err := runTracker(t, home, "init")
	require.NoError(t, err, out)
}

func TestCommandsRequireInit(t *testing.T) {
	out, err := runTracker(t, t.TempDir(), "account", "list")
	require.Error(t, err)
	assert.Contains(t, out, "run 'tracker init' first?")
}

func TestAccountLifecycle(t *testing.T) {
	home := initHome(t)

	out, err := runTracker(t, home, "account", "add", "cheque")
	require.NoError(t, err, out)

	out, err = runTracker(t, home, "account", "list")
	require.NoError(t, err, out)
	assert.Contains(t, out, "cheque")

	out, err = runTracker(t, home, "account", "add", "9lives")
	require.Error(t, err)
	assert.Contains(t, out, "invalid account name")

	out, err = runTracker(t, home, "account", "remove", "cheque")
	require.NoError(t, err, out)

	out, err = runTracker(t, home, "account", "list")
	require.NoError(t, err, out)
	assert.NotContains(t, out, "cheque")
}

func TestImport_EndToEnd(t *testing.T) {
	home := initHome(t)
	_, err := runTracker(t, home, "account", "add", "cheque")
	require.NoError(t, err)
	_, err = runTracker(t, home, "settings", "columns", "--date", "A", "--amount", "B", "--description", "C")
	require.NoError(t, err)

	statement := filepath.Join(home, "statement.csv")
	require.NoError(t, os.WriteFile(statement, []byte(
		"Date,Amount,Description\n2024-01-02,-1000.00,Rent\n2024-01-03,-52.30,Fuel Station\n"), 0o644))

	out, err := runTracker(t, home, "import", statement, "--account", "cheque")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Added 2 new transactions")

	// Re-import is a no-op.
	out, err = runTracker(t, home, "import", statement, "--account", "cheque")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Added 0 new transactions")

	out, err = runTracker(t, home, "tx", "list", "--account", "cheque")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Rent")
	assert.Contains(t, out, "2024-01-02")
}

func TestImport_MissingFile(t *testing.T) {
	home := initHome(t)
	_, err := runTracker(t, home, "account", "add", "cheque")
	require.NoError(t, err)
	_, err = runTracker(t, home, "settings", "columns", "--date", "A", "--amount", "B", "--description", "C")
	require.NoError(t, err)

	out, err := runTracker(t, home, "import", filepath.Join(home, "nope.csv"), "--account", "cheque")
	require.NoError(t, err, out)
	assert.Contains(t, out, "No bank statement imported")
}

func TestSettings_ColumnsUnconfigured(t *testing.T) {
	home := initHome(t)

	out, err := runTracker(t, home, "settings", "columns")
	require.NoError(t, err, out)
	assert.Contains(t, out, "CSV column mapping not configured")
}

func TestSettings_Format(t *testing.T) {
	home := initHome(t)

	out, err := runTracker(t, home, "settings", "format")
	require.NoError(t, err, out)
	assert.Contains(t, out, "csv")

	out, err = runTracker(t, home, "settings", "format", "ofx")
	require.NoError(t, err, out)

	out, err = runTracker(t, home, "settings", "format")
	require.NoError(t, err, out)
	assert.Contains(t, out, "ofx")
}

func TestCategoryList_Seeded(t *testing.T) {
	home := initHome(t)

	out, err := runTracker(t, home, "category", "list")
	require.NoError(t, err, out)
	for _, name := range []string{"Income", "Entertainment Expense", "Rates And Taxes", "Fuel", "Delete"} {
		assert.Contains(t, out, name)
	}
}

func TestRuleAdd_RejectsUncategorizedTarget(t *testing.T) {
	home := initHome(t)

	out, err := runTracker(t, home, "rule", "add", "--name", "r", "--match", "x", "--category", "Please Select")
	require.NoError(t, err, out)
	assert.Contains(t, out, "please select a category for the rule; rule not saved")

	out, err = runTracker(t, home, "rule", "list")
	require.NoError(t, err, out)
	assert.NotContains(t, out, "x")
}

func TestSummary_Empty(t *testing.T) {
	home := initHome(t)

	out, err := runTracker(t, home, "summary")
	require.NoError(t, err, out)
	assert.Contains(t, out, "No transactions recorded")
}

func TestSummary_WithTransactions(t *testing.T) {
	home := initHome(t)
	_, err := runTracker(t, home, "account", "add", "cheque")
	require.NoError(t, err)

	out, err := runTracker(t, home, "tx", "add", "--account", "cheque",
		"--date", "2024-01-03", "--description", "Fuel Station", "--amount", "-52.30", "--category", "Fuel")
	require.NoError(t, err, out)

	out, err = runTracker(t, home, "summary")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Fuel")
	assert.Contains(t, out, "52.30")
	assert.Contains(t, out, "Uncategorized")
}
