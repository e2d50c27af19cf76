// Copyright 2017 The Godic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of material data from JSON files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/godic/mdl/elast"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Model string     `json:"model"` // name of model; e.g. "plane-stress", "plane-strain"
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Mdl elast.Model `json:"-"` // pointer to allocated model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	byname map[string]*Material
}

// ReadMat reads all materials data from a .mat JSON file and allocates and
// initialises the corresponding models
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file; os.ReadFile keeps the error-return flow since gosl's reader
	// panics on missing files
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, err
	}

	// alloc/init models
	mdb.byname = make(map[string]*Material)
	for _, m := range mdb.Materials {
		if _, found := mdb.byname[m.Name]; found {
			return nil, chk.Err("duplicate material named %q", m.Name)
		}
		m.Mdl, err = elast.New(m.Model)
		if err != nil {
			return nil, err
		}
		err = m.Mdl.Init(m.Prms)
		if err != nil {
			return nil, err
		}
		mdb.byname[m.Name] = m
	}
	return
}

// Get returns a material or nil if the name is not in the database
func (o *MatDb) Get(name string) *Material {
	return o.byname[name]
}

// String prints one materials file formatted as JSON
func (o MatDb) String() string {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return io.Sf("cannot encode materials database: %v", err)
	}
	return string(b)
}
