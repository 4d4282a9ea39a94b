// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// ApplyOverrides sets the projection fields of the scene that are
// non-zero in p, typically from command line flags. Zero fields of p
// leave the scene unchanged.
func (sc *Scene) ApplyOverrides(p Projection) error {
	err := copier.CopyWithOption(&sc.Projection, &p, copier.Option{IgnoreEmpty: true})
	if err != nil {
		return fmt.Errorf("config: applying overrides: %w", err)
	}
	return nil
}
