/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	profileapi "github.com/trustbloc/siop-validator/pkg/profile"
)

func TestNewReader(t *testing.T) {
	t.Run("from flag", func(t *testing.T) {
		cmd := &cobra.Command{}
		AddFlags(cmd)

		require.NoError(t, cmd.Flags().Set(profilesFilePathFlagName, filepath.Join("testdata", "profiles.json")))

		r, err := NewReader(&Config{CMD: cmd})
		require.NoError(t, err)

		p, err := r.GetProfile("driving-license")
		require.NoError(t, err)
		require.Equal(t, "https://rp.example.com/siop", p.Audience)
		require.Equal(t, []string{"did:example:issuer"}, p.Credential.ContractIssuers["DrivingLicense"])
		require.True(t, p.Credential.StatusCheck)
		require.Equal(t, 60, p.DriftInSec)
		require.Equal(t, 2, p.Safeguards.MaxNumberOfVPTokensInSiop)

		ids := make([]string, 0)
		for _, v := range r.GetAllProfiles() {
			ids = append(ids, v.ID)
		}

		require.Equal(t, []string{"basic", "driving-license"}, ids)
	})

	t.Run("from env", func(t *testing.T) {
		t.Setenv(profilesFilePathEnvKey, filepath.Join("testdata", "profiles.json"))

		cmd := &cobra.Command{}
		AddFlags(cmd)

		r, err := NewReader(&Config{CMD: cmd})
		require.NoError(t, err)
		require.Len(t, r.GetAllProfiles(), 2)
	})

	t.Run("path not set", func(t *testing.T) {
		cmd := &cobra.Command{}
		AddFlags(cmd)

		_, err := NewReader(&Config{CMD: cmd})
		require.Error(t, err)
	})
}

func TestReadFile(t *testing.T) {
	t.Run("inactive profile", func(t *testing.T) {
		r, err := ReadFile(filepath.Join("testdata", "profiles.json"))
		require.NoError(t, err)

		_, err = r.GetProfile("retired")
		require.ErrorIs(t, err, profileapi.ErrProfileNotFound)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFile(filepath.Join("testdata", "missing.json"))
		require.Error(t, err)
	})

	tests := []struct {
		name    string
		content string
		err     string
	}{
		{
			name:    "invalid json",
			content: `{`,
			err:     "decode profiles file",
		},
		{
			name:    "missing audience",
			content: `{"validations":[{"id":"p1","active":true}]}`,
			err:     "profile p1: audience is required",
		},
		{
			name:    "missing id",
			content: `{"validations":[{"active":true,"audience":"https://rp"}]}`,
			err:     "profile id is required",
		},
		{
			name: "duplicate",
			content: `{"validations":[{"id":"p1","active":true,"audience":"https://rp"},` +
				`{"id":"p1","active":true,"audience":"https://rp"}]}`,
			err: "duplicate profile p1",
		},
		{
			name: "credential type without issuers",
			content: `{"validations":[{"id":"p1","active":true,"audience":"https://rp",` +
				`"credential":{"contractIssuers":{"DrivingLicense":[]}}}]}`,
			err: "profile p1: no issuers for credential type DrivingLicense",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "profiles.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := ReadFile(path)
			require.ErrorContains(t, err, tt.err)
		})
	}
}
