/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/siop-validator/internal/logfields"
	profileapi "github.com/trustbloc/siop-validator/pkg/profile"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	profilesFilePathFlagName  = "profiles-file-path"
	profilesFilePathFlagUsage = "Validation profiles json file path. " + commonEnvVarUsageText + profilesFilePathEnvKey
	profilesFilePathEnvKey    = "SIOP_REST_PROFILES_FILE_PATH"
)

var logger = log.New("profile-reader")

// Config contain config.
type Config struct {
	CMD *cobra.Command
}

// Reader reads validation profiles from a JSON file.
type Reader struct {
	profiles map[profileapi.ID]*profileapi.Validation
}

type profileFile struct {
	Validations []*profileapi.Validation `json:"validations"`
}

// NewReader creates a Reader from the file named by the profiles-file-path flag.
func NewReader(config *Config) (*Reader, error) {
	profileJSONFile, err := cmdutils.GetUserSetVarFromString(config.CMD, profilesFilePathFlagName,
		profilesFilePathEnvKey, false)
	if err != nil {
		return nil, err
	}

	return ReadFile(profileJSONFile)
}

// ReadFile creates a Reader from the profiles file at path.
func ReadFile(path string) (*Reader, error) {
	jsonBytes, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var p profileFile
	if err = json.Unmarshal(jsonBytes, &p); err != nil {
		return nil, fmt.Errorf("decode profiles file: %w", err)
	}

	r := &Reader{profiles: make(map[profileapi.ID]*profileapi.Validation)}

	for _, v := range p.Validations {
		if v == nil {
			continue
		}

		if err = v.Validate(); err != nil {
			return nil, err
		}

		if _, ok := r.profiles[v.ID]; ok {
			return nil, fmt.Errorf("duplicate profile %s", v.ID)
		}

		if !v.Active {
			logger.Info("skip inactive validation profile", logfields.WithProfileID(v.ID))

			continue
		}

		r.profiles[v.ID] = v

		logger.Info("load validation profile successfully", logfields.WithProfileID(v.ID))
	}

	return r, nil
}

// GetProfile returns the active profile with given id.
func (r *Reader) GetProfile(profileID profileapi.ID) (*profileapi.Validation, error) {
	p, ok := r.profiles[profileID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", profileapi.ErrProfileNotFound, profileID)
	}

	return p, nil
}

// GetAllProfiles returns the active profiles ordered by id.
func (r *Reader) GetAllProfiles() []*profileapi.Validation {
	ids := lo.Keys(r.profiles)
	sort.Strings(ids)

	result := make([]*profileapi.Validation, 0, len(ids))

	for _, id := range ids {
		result = append(result, r.profiles[id])
	}

	return result
}

// AddFlags adds the profiles file flag to startCmd.
func AddFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(profilesFilePathFlagName, "", "", profilesFilePathFlagUsage)
}
