// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import "context"

// Repository is the section store. Implementations return the dberr sentinels
// for missing rows and constraint violations.
type Repository interface {
	ListSections(ctx context.Context) ([]*Section, error)
	GetSection(ctx context.Context, id int64) (*Section, error)
	SectionExists(ctx context.Context, id int64) (bool, error)
	CreateSection(ctx context.Context, section *Section) error
	UpdateSection(ctx context.Context, id int64, input UpdateInput) (*Section, error)
	DeleteSection(ctx context.Context, id int64) error
}
