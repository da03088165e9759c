// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/pflag"
)

// bindFlag ties a flag to a config key so flags, NOTESPLIT_* variables and
// the config file resolve through one precedence chain.
func (a *app) bindFlag(key string, flag *pflag.Flag) {
	if flag == nil {
		panic("notesplit: binding missing flag for " + key)
	}
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
