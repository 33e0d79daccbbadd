// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings provides the building blocks which are shared by
// all configuration file versions, namely a human readable Duration,
// helpers for filling nil settings with their defaults, range
// verification of bounded settings, and environment variable
// overrides. Settings are kept as pointers, so a missing item can be
// told apart from an item which was set to its zero value.
package settings
