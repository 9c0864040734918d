package services

import (
	"context"

	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/models"
)

// ProfileService handles self-service profile updates.
type ProfileService struct {
	reader MemberReader
	writer MemberWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader MemberReader, writer MemberWriter) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
	}
}

// Update applies a partial update to the member's own record. A changed email
// is re-checked for case-insensitive uniqueness excluding the member itself.
// Username and joined_at are immutable.
func (svc *ProfileService) Update(ctx context.Context, member *models.MemberDB, patch models.ProfileUpdate) (*models.MemberDB, error) {
	updated := *member

	if patch.Email != nil {
		taken, err := svc.reader.ExistsEmail(ctx, *patch.Email, &member.MemberID)
		if err != nil {
			logger.Log.Errorw("failed to check email", "err", err)
			return nil, err
		}
		if taken {
			logger.Log.Errorw("email already taken", "email", *patch.Email)
			return nil, ErrEmailTaken
		}
		updated.Email = *patch.Email
	}
	if patch.Phone != nil {
		updated.Phone = patch.Phone
	}
	if patch.About != nil {
		updated.About = *patch.About
	}

	if err := svc.writer.Update(ctx, &updated); err != nil {
		logger.Log.Errorw("failed to update member", "err", err)
		return nil, mapUniqueViolation(err)
	}

	return &updated, nil
}
