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

// Command build builds engine binaries with the version metadata baked
// in using ldflags.
package main

import (
	"fmt"
	"os"

	"laptudirm.com/x/ivory/scripts/util"
)

func main() {
	task := "dev"
	if len(os.Args) > 1 {
		task = os.Args[1]
	}

	if err := build(task); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func build(task string) error {
	var version string
	var err error

	switch task {
	case "dev":
		// version is latest tag-commits after tag-current commit hash
		version, err = util.RunWithOutput("git", "describe", "--tags", "--always")

	case "release":
		// version is the latest tag
		version, err = util.RunWithOutput("git", "describe", "--tags", "--abbrev=0")

	default:
		return fmt.Errorf("build: unknown task %q", task)
	}

	if err != nil {
		return err
	}

	exe := os.Getenv("EXE")
	if exe == "" {
		exe = "ivory"
	}

	const project = "laptudirm.com/x/ivory"
	ldflags := fmt.Sprintf("-X %s/internal/build.Version=%s", project, version)

	return util.RunNormal("go", "build", "-ldflags", ldflags, "-o", exe, project)
}
