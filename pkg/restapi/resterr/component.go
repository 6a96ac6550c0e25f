/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

const (
	ClaimTokenComponent           Component = "claim-token"
	KeySuiteComponent             Component = "key-suite-registry"
	ValidationHelperComponent     Component = "validation-helper"
	SelfIssuedValidatorComponent  Component = "validator.self-issued"
	IDTokenValidatorComponent     Component = "validator.id-token"
	VCValidatorComponent          Component = "validator.verifiable-credential"
	VPValidatorComponent          Component = "validator.verifiable-presentation"
	SiopValidatorComponent        Component = "validator.siop"
	OrchestratorComponent         Component = "validator.orchestrator"
	DIDResolverComponent          Component = "did-resolver"
	WellKnownSvcComponent         Component = "well-known-service"
	ValidationControllerComponent Component = "validation-controller"
	ProfileSvcComponent           Component = "profile-service"
	RedisComponent                Component = "redis-service"
)
