// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Template is a pre-configured document template offered to tenants.
type Template struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	AttachmentFileURL string    `json:"attachmentFileUrl"`
	CreatedAt         time.Time `json:"createdAt,omitzero"`
}

// NewTemplate is the body of the add-template call.
type NewTemplate struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	AttachmentFileURL string `json:"attachmentFileUrl"`
}

// TemplateUpdate replaces the attachment of a template. ID goes into the
// path, only the attachment URL is sent.
type TemplateUpdate struct {
	ID                string `json:"-"`
	AttachmentFileURL string `json:"attachmentFileUrl"`
}
