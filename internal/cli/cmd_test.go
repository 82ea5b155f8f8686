package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkwash/internal/domain"
	"parkwash/internal/domain/employee"
	"parkwash/internal/domain/rate"
	jwtsvc "parkwash/internal/pkg/jwt"
	"parkwash/internal/testutil"
)

func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewDB(t)

	return &App{
		Migrate: func() error {
			return db.AutoMigrate(&employee.Employee{}, &rate.Rate{})
		},
		Employees: employee.NewService(employee.NewRepository(db), jwtsvc.New("cli-test-secret", 0)),
		Rates:     rate.NewService(rate.NewRepository(db)),
	}
}

func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestMigrateCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema up to date")
}

func TestEmployeeCreateAndList(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "migrate")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "employee", "create",
		"--name", "Root Admin", "--username", "Root", "--password", "secret123", "--role", "global_admin")
	require.NoError(t, err)
	assert.Contains(t, out, "username=root")
	assert.Contains(t, out, "role=global_admin")

	out, err = executeCmd(t, app, "employee", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "root")
}

func TestEmployeeCreateRejectsUnknownRole(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "migrate")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "employee", "create",
		"--name", "X", "--username", "xyz", "--password", "secret123", "--role", "cashier")
	assert.ErrorIs(t, err, employee.ErrInvalidRole)
}

func TestEmployeeCreateRequiresFlags(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "employee", "create", "--name", "X")
	assert.Error(t, err)
}

func TestRateSetAndList(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "migrate")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "rate", "set", "--vehicle", "car", "--type", "hora", "--price", "3000")
	require.NoError(t, err)
	assert.Contains(t, out, "CAR/HOUR price=3000")

	r, err := app.Rates.ActiveRate(context.Background(), domain.VehicleCar, rate.TypeHour)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, int64(3000), r.Price)

	out, err = executeCmd(t, app, "rate", "list", "--vehicle", "CAR")
	require.NoError(t, err)
	assert.Contains(t, out, "HOUR")
}
