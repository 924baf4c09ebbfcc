// Package testdb provides helpers for PostgreSQL integration tests.
//
// Tests that need a database call GetTestDBWithT, which skips the test when
// CASEFILE_TEST_DATABASE_URL is unset, applies the embedded migrations once per
// process and closes the connection when the test ends. WithTx runs the body in
// a transaction that is always rolled back, so tests can run in parallel
// against the same tables:
//
//	func TestSomething(t *testing.T) {
//	    t.Parallel()
//	    db := testdb.GetTestDBWithT(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        cases := postgres.NewPostgresCaseStore(tx, nil)
//	        // ...
//	    })
//	}
package testdb
