/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"net/url"
	"strings"
)

// ReadContractID returns the contract identifier of a contract URL: its last path segment,
// unescaped and without query.
func ReadContractID(contract string) string {
	if i := strings.IndexAny(contract, "?#"); i >= 0 {
		contract = contract[:i]
	}

	contract = strings.TrimSuffix(contract, "/")

	if i := strings.LastIndex(contract, "/"); i >= 0 {
		contract = contract[i+1:]
	}

	id, err := url.PathUnescape(contract)
	if err != nil {
		return contract
	}

	return id
}
