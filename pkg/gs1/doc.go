// SPDX-License-Identifier: MPL-2.0

// Package gs1 parses and serializes GS1 element strings, the (AI)value sequences
// carried by GS1-128 barcodes.
//
// Supported Application Identifiers are SSCC (00), GTIN (01), content (02), batch (10),
// production date (11), expiration date (17), serial (21), count (37), net weight in
// kilograms (3102), gross weight in kilograms (3302), and net weight in pounds (3201),
// which is accepted on input only and converted to kilograms.
//
// Parsing is a single tokenizing pass followed by independent decoding of each token,
// so fields may appear in any order. Serialization always emits the canonical order.
package gs1
