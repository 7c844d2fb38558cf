// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package flag_test

import (
	"reflect"
	"testing"

	"laptudirm.com/x/ivory/pkg/uci/flag"
)

func testSchema() flag.Schema {
	schema := flag.NewSchema()
	schema.Button("infinite")
	schema.Single("movetime")
	schema.Array("pair", 2)
	schema.Variadic("moves")
	return schema
}

func TestParse(t *testing.T) {
	schema := testSchema()

	values, err := schema.Parse([]string{
		"movetime", "100", "infinite", "moves", "e2e4", "e7e5",
	})
	if err != nil {
		t.Fatal(err)
	}

	if !values["infinite"].Set {
		t.Error("button flag not set")
	}

	if got := values["movetime"].Value.(string); got != "100" {
		t.Errorf("wrong single flag value: %q", got)
	}

	if got := values["moves"].Value.([]string); !reflect.DeepEqual(got, []string{"e2e4", "e7e5"}) {
		t.Errorf("wrong variadic flag value: %v", got)
	}

	if values["pair"].Set {
		t.Error("unprovided flag reported as set")
	}
}

func TestParseErrors(t *testing.T) {
	schema := testSchema()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"bogus"}},
		{"flag set twice", []string{"infinite", "infinite"}},
		{"missing argument", []string{"movetime"}},
		{"incomplete array", []string{"pair", "one"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := schema.Parse(test.args); err == nil {
				t.Error("expected a parse error")
			}
		})
	}
}

func TestNilSchema(t *testing.T) {
	var schema flag.Schema

	if _, err := schema.Parse(nil); err != nil {
		t.Errorf("empty args on nil schema: %v", err)
	}

	if _, err := schema.Parse([]string{"x"}); err == nil {
		t.Error("expected an error for args on a nil schema")
	}
}
