// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package regression

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/jetsetilly/gopher8/database"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/jetsetilly/gopher8/resources"
)

// locations of the regression database file and the fails file, relative to
// the resources path.
const regressionPath = "regression"
const regressionDBFile = "db"
const fails = "fails"

// Regressor is the generic entry type in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag causes the test to store the freshly generated results rather than
	// compare them against the stored results.
	//
	// message is the string to print while the test runs. it should not have
	// a trailing newline.
	//
	// returns the success of the test, any additional detail about a failure,
	// and any error
	regress(newRegression bool, output io.Writer, message string) (bool, string, error)
}

// when starting a database session we need to register the entry types that
// will be found in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(digestEntryID, deserialiseDigestEntry)
}

// start a database session with the regression database file.
func startSession(activity database.Activity) (*database.Session, error) {
	dbPth, err := resources.JoinPath(regressionPath, regressionDBFile)
	if err != nil {
		return nil, fmt.Errorf("regression: %w", err)
	}

	return database.StartSession(dbPth, activity, initDBSession)
}

// RegressList displays all entries in the regression database.
func RegressList(output io.Writer) error {
	if output == nil {
		return fmt.Errorf("regression: io.Writer should not be nil")
	}

	db, err := startSession(database.ActivityReading)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd adds a new regression test to the database. The test is run
// before it is added in order to gather the reference results.
func RegressAdd(output io.Writer, reg Regressor) error {
	if output == nil {
		return fmt.Errorf("regression: io.Writer should not be nil")
	}

	db, err := startSession(database.ActivityCreating)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	msg := fmt.Sprintf("adding: %s", reg)
	ok, _, err := reg.regress(true, output, msg)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("regression: test failed and has not been added")
	}

	output.Write([]byte(ansi.ClearLine))
	output.Write([]byte(fmt.Sprintf("\radded: %s\n", reg)))

	_, err = db.Add(reg)
	return err
}

// RegressDelete removes a test from the regression database. The confirmation
// reader is used to ask the user for confirmation before anything is deleted.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	if output == nil {
		return fmt.Errorf("regression: io.Writer should not be nil")
	}

	v, err := strconv.Atoi(key)
	if err != nil {
		return fmt.Errorf("regression: invalid key (%s)", key)
	}

	db, err := startSession(database.ActivityModifying)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ent, err := db.Get(v)
	if err != nil {
		return err
	}

	output.Write([]byte(fmt.Sprintf("%s\ndelete? (y/n): ", ent)))

	confirm := make([]byte, 32)
	if _, err := confirmation.Read(confirm); err != nil {
		return fmt.Errorf("regression: %w", err)
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		if err := db.Delete(v); err != nil {
			return err
		}
		output.Write([]byte(fmt.Sprintf("deleted test #%s from regression database\n", key)))
	}

	return nil
}

// returned by the onSelect function in RegressRunTests to end the selection
// early without an error.
var endSelection = errors.New("end selection")

// RegressRunTests runs the tests in the regression database. The filterKeys
// list specifies which entries to test, an empty list meaning every entry.
// The special key "FAILS" expands to the keys that failed on the previous
// run.
func RegressRunTests(output io.Writer, verbose bool, failOnError bool, filterKeys []string) error {
	if output == nil {
		return fmt.Errorf("regression: io.Writer should not be nil")
	}

	filterKeys, err := addFailsToKeys(filterKeys)
	if err != nil {
		if errors.Is(err, noPreviousFails) {
			output.Write([]byte("no previous fails\n"))
			return nil
		}
		return fmt.Errorf("regression: %w", err)
	}

	// make sure any supplied keys list is valid and in order
	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("regression: invalid key (%s)", k)
		}
		keys = append(keys, v)
	}
	sort.Ints(keys)

	db, err := startSession(database.ActivityReading)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	numSucceed := 0
	numFail := 0
	numError := 0
	failedKeys := []string{}

	defer func() {
		output.Write([]byte(fmt.Sprintf("regression tests: %d succeed, %d fail", numSucceed, numFail)))
		if numError > 0 {
			output.Write([]byte(fmt.Sprintf(", %d error", numError)))
		}
		output.Write([]byte("\n"))
	}()

	onSelect := func(key int, ent database.Entry) error {
		reg, ok := ent.(Regressor)
		if !ok {
			return fmt.Errorf("regression: entry #%03d is not a regression test", key)
		}

		msg := fmt.Sprintf("running: %03d %s", key, reg)
		ok, failm, err := reg.regress(false, output, msg)

		// once regress() has completed we clear the line ready for the
		// completion message
		output.Write([]byte(ansi.ClearLine))

		if err != nil {
			numError++
			failedKeys = append(failedKeys, strconv.Itoa(key))
			output.Write([]byte(fmt.Sprintf("\r* error: %03d %s\n", key, reg)))
			if verbose {
				output.Write([]byte(fmt.Sprintf("  %s\n", err)))
			}
			if failOnError {
				return endSelection
			}
		} else if !ok {
			numFail++
			failedKeys = append(failedKeys, strconv.Itoa(key))
			output.Write([]byte(fmt.Sprintf("\rfailure: %03d %s\n", key, reg)))
			if verbose && failm != "" {
				output.Write([]byte(fmt.Sprintf("  %s\n", failm)))
			}
		} else {
			numSucceed++
			output.Write([]byte(fmt.Sprintf("\rsucceed: %03d %s\n", key, reg)))
		}

		return nil
	}

	if err := db.SelectKeys(onSelect, keys...); err != nil && !errors.Is(err, endSelection) {
		return err
	}

	// remember which keys failed so a future run can select them with the
	// FAILS key
	return saveFails(failedKeys)
}
