package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

// MemberStoreForRegistration defines the store interface needed by the
// register member orchestrator.
type MemberStoreForRegistration interface {
	GetByEmail(ctx context.Context, email string) (member.Member, error)
	Create(ctx context.Context, m member.Member) (int64, error)
}

// RegisterMemberInput carries input for the register member orchestrator.
type RegisterMemberInput struct {
	FirstName   string
	LastName    string
	DateOfBirth time.Time // zero when unspecified
	Gender      string
	Email       string
	Phone       string
	Address     string
}

// RegisterMemberDeps holds dependencies for RegisterMember.
type RegisterMemberDeps struct {
	MemberStore MemberStoreForRegistration
	Now         func() time.Time
}

// ExecuteRegisterMember creates a new member with an Active membership.
// PRE: email is unique case-insensitively
// POST: Member persisted with join date = today and status Active
func ExecuteRegisterMember(ctx context.Context, input RegisterMemberInput, deps RegisterMemberDeps) (member.Member, error) {
	email, err := validate.Email(input.Email, member.MaxEmailLength)
	if err != nil {
		return member.Member{}, err
	}

	m := member.Member{
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		DateOfBirth:      input.DateOfBirth,
		Gender:           input.Gender,
		Email:            email,
		Phone:            input.Phone,
		Address:          input.Address,
		JoinDate:         deps.Now(),
		MembershipStatus: member.StatusActive,
	}
	if err := m.Validate(); err != nil {
		return member.Member{}, err
	}

	if _, err := deps.MemberStore.GetByEmail(ctx, email); err == nil {
		return member.Member{}, errs.Invalidf("a member with email %s already exists", email)
	} else if !errs.IsKind(err, errs.KindNotFound) {
		return member.Member{}, err
	}

	id, err := deps.MemberStore.Create(ctx, m)
	if err != nil {
		return member.Member{}, err
	}
	m.ID = id

	slog.Info("member_event", "event", "member_registered", "member_id", m.ID, "email", m.Email)
	return m, nil
}

// MemberStoreForProfile defines the store interface needed by the update
// profile orchestrator.
type MemberStoreForProfile interface {
	GetByID(ctx context.Context, id int64) (member.Member, error)
	GetByEmail(ctx context.Context, email string) (member.Member, error)
	Update(ctx context.Context, m member.Member) error
}

// UpdateProfileInput carries input for the update profile orchestrator. Nil
// fields are left unchanged; an empty-string Phone or Address clears the
// stored value.
type UpdateProfileInput struct {
	MemberID         int64
	FirstName        *string
	LastName         *string
	Email            *string
	Phone            *string
	Address          *string
	MembershipStatus *string
}

// UpdateProfileDeps holds dependencies for UpdateProfile.
type UpdateProfileDeps struct {
	MemberStore MemberStoreForProfile
}

// ExecuteUpdateProfile applies a partial update to a member's profile.
// PRE: at least one field is provided; member exists
// POST: Member updated, or an error and no change
func ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput, deps UpdateProfileDeps) (member.Member, error) {
	if err := validate.PositiveID("member ID", input.MemberID); err != nil {
		return member.Member{}, err
	}
	if err := validate.AtLeastOne("first name, last name, email, phone, address, membership status",
		input.FirstName != nil, input.LastName != nil, input.Email != nil,
		input.Phone != nil, input.Address != nil, input.MembershipStatus != nil); err != nil {
		return member.Member{}, err
	}

	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return member.Member{}, err
	}

	if input.FirstName != nil {
		m.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		m.LastName = *input.LastName
	}
	if input.Email != nil {
		email, err := validate.Email(*input.Email, member.MaxEmailLength)
		if err != nil {
			return member.Member{}, err
		}
		if email != m.Email {
			if _, err := deps.MemberStore.GetByEmail(ctx, email); err == nil {
				return member.Member{}, errs.Invalidf("a member with email %s already exists", email)
			} else if !errs.IsKind(err, errs.KindNotFound) {
				return member.Member{}, err
			}
		}
		m.Email = email
	}
	if input.Phone != nil {
		m.Phone = *input.Phone
	}
	if input.Address != nil {
		m.Address = *input.Address
	}
	if input.MembershipStatus != nil {
		m.MembershipStatus = *input.MembershipStatus
	}

	if err := m.Validate(); err != nil {
		return member.Member{}, err
	}
	if err := deps.MemberStore.Update(ctx, m); err != nil {
		return member.Member{}, err
	}

	slog.Info("member_event", "event", "profile_updated", "member_id", m.ID)
	return m, nil
}
