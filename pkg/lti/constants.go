// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lti

const Version = "1.3.0"

// Message types carried by the message_type claim.
const (
	MessageTypeResourceLink        = "LtiResourceLinkRequest"
	MessageTypeDeepLinkingRequest  = "LtiDeepLinkingRequest"
	MessageTypeDeepLinkingResponse = "LtiDeepLinkingResponse"
)

const (
	ClaimMessageType        = "https://purl.imsglobal.org/spec/lti/claim/message_type"
	ClaimVersion            = "https://purl.imsglobal.org/spec/lti/claim/version"
	ClaimDeploymentID       = "https://purl.imsglobal.org/spec/lti/claim/deployment_id"
	ClaimTargetLinkURI      = "https://purl.imsglobal.org/spec/lti/claim/target_link_uri"
	ClaimResourceLink       = "https://purl.imsglobal.org/spec/lti/claim/resource_link"
	ClaimContext            = "https://purl.imsglobal.org/spec/lti/claim/context"
	ClaimRoles              = "https://purl.imsglobal.org/spec/lti/claim/roles"
	ClaimToolPlatform       = "https://purl.imsglobal.org/spec/lti/claim/tool_platform"
	ClaimLaunchPresentation = "https://purl.imsglobal.org/spec/lti/claim/launch_presentation"
	ClaimCustom             = "https://purl.imsglobal.org/spec/lti/claim/custom"

	ClaimAGSEndpoint = "https://purl.imsglobal.org/spec/lti-ags/claim/endpoint"
	ClaimNRPS        = "https://purl.imsglobal.org/spec/lti-nrps/claim/namesroleservice"

	ClaimDeepLinkingSettings     = "https://purl.imsglobal.org/spec/lti-dl/claim/deep_linking_settings"
	ClaimDeepLinkingContentItems = "https://purl.imsglobal.org/spec/lti-dl/claim/content_items"
	ClaimDeepLinkingData         = "https://purl.imsglobal.org/spec/lti-dl/claim/data"
)

// OAuth scopes for the platform services.
const (
	ScopeLineItem         = "https://purl.imsglobal.org/spec/lti-ags/scope/lineitem"
	ScopeLineItemReadOnly = "https://purl.imsglobal.org/spec/lti-ags/scope/lineitem.readonly"
	ScopeResultReadOnly   = "https://purl.imsglobal.org/spec/lti-ags/scope/result.readonly"
	ScopeScore            = "https://purl.imsglobal.org/spec/lti-ags/scope/score"
	ScopeNRPSMembership   = "https://purl.imsglobal.org/spec/lti-nrps/scope/contextmembership.readonly"
)

const ClientAssertionType = "urn:ietf:params:oauth:client-assertion-type:jwt-bearer"

const (
	MediaTypeScore               = "application/vnd.ims.lis.v1.score+json"
	MediaTypeLineItemContainer   = "application/vnd.ims.lis.v2.lineitemcontainer+json"
	MediaTypeMembershipContainer = "application/vnd.ims.lti-nrps.v2.membershipcontainer+json"
)

// CustomPackageID is the custom parameter naming the content package of a link.
const CustomPackageID = "package_id"

const ContentItemTypeResourceLink = "ltiResourceLink"
