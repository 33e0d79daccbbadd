// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	// embedded zoneinfo, so catalog time zones load on slim images
	_ "time/tzdata"

	"github.com/momeni/parkmock/cmd/pmweb/command"
)

func main() {
	command.Execute()
}
