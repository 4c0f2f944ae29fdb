// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package locales provides locale-keyed message tables loaded from YAML
// bundle files. Bundles are discovered on any number of afero filesystems,
// so embedded defaults and on-disk overrides compose naturally.
package locales
