// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE documents against an embedded schema.
//
// Label files and the configuration file share the same flow:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify it with the schema definition
//  3. Validate and decode to a Go struct
//
// # Usage
//
//	//go:embed labelfile_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseAndDecode[LabelFile](
//	    schemaBytes,
//	    data,
//	    "#LabelFile",
//	    cueutil.WithFilename("labels.cue"),
//	)
//	if err != nil {
//	    return nil, err // each failure carries its CUE path
//	}
//	return result.Value, nil
package cueutil
