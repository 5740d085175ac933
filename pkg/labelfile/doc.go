// SPDX-License-Identifier: MPL-2.0

// Package labelfile reads batches of GS1-128 label definitions from CUE files.
//
// A label file looks like:
//
//	defaults: {
//		company_prefix: "614141"
//		type:           "GTIN-14"
//	}
//	labels: [{
//		name:            "case of 12"
//		item_number:     45678
//		batch:           "ABC123"
//		net_weight_kg:   7.25
//		expiration_date: "250630"
//	}]
//
// Parse validates the file against an embedded schema; Encode turns every label into
// a GTIN, an element string and a raw barcode payload.
package labelfile
