package partner

import (
	"context"

	"github.com/campusnest/backend/constant"
	"github.com/campusnest/backend/model"
	accommodationrepo "github.com/campusnest/backend/repository/accommodation"
	partnerrepo "github.com/campusnest/backend/repository/partner"
	servicerepo "github.com/campusnest/backend/repository/service"
	"github.com/campusnest/backend/utils/password"
)

// identityResolver is one stage of the partner login chain. It returns
// (nil, nil) when the identifier has no match or the password is wrong;
// the caller collapses both into invalid credentials.
type identityResolver interface {
	resolve(ctx context.Context, identifier, supplied string) (*model.PartnerProfile, error)
}

// accommodationResolver hits the accommodation legacy table directly.
type accommodationResolver struct {
	repo accommodationrepo.AccommodationRepository
}

func (r *accommodationResolver) resolve(ctx context.Context, identifier, supplied string) (*model.PartnerProfile, error) {
	listing, err := r.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if listing == nil || !password.Verify(listing.Password, supplied) {
		return nil, nil
	}
	return &model.PartnerProfile{
		ID:             listing.ID,
		FullName:       listing.OwnerName,
		Email:          listing.Email,
		Phone:          listing.Phone,
		UserType:       "partner",
		PartnerType:    constant.PartnerTypeAccommodation,
		DashboardRoute: DashboardRouteFor(constant.PartnerTypeAccommodation),
	}, nil
}

// partnerAccountResolver checks the unified partner_accounts table and
// confirms the backing legacy row still exists.
type partnerAccountResolver struct {
	partnerRepo       partnerrepo.PartnerRepository
	accommodationRepo accommodationrepo.AccommodationRepository
	serviceRepo       servicerepo.ServiceRepository
}

func (r *partnerAccountResolver) resolve(ctx context.Context, identifier, supplied string) (*model.PartnerProfile, error) {
	account, err := r.partnerRepo.Get(ctx, &model.PartnerFilter{Identifier: identifier})
	if err != nil {
		return nil, err
	}
	if account == nil || !password.Verify(account.Password, supplied) {
		return nil, nil
	}

	profile := &model.PartnerProfile{
		ID:             account.ID,
		FullName:       account.FullName,
		Email:          account.Email,
		Phone:          account.Phone,
		UserType:       "partner",
		PartnerType:    account.PartnerType,
		DashboardRoute: account.DashboardRoute,
	}

	// Resolve the backing legacy row; a dangling reference downgrades to a
	// plain profile rather than failing the login.
	switch account.ReferenceTable {
	case constant.ReferenceAccommodation:
		listing, err := r.accommodationRepo.GetByID(ctx, account.ReferenceID)
		if err != nil {
			return nil, err
		}
		if listing != nil && profile.FullName == "" {
			profile.FullName = listing.OwnerName
		}
	case constant.ReferenceServices:
		svc, err := r.serviceRepo.GetByID(ctx, account.ReferenceID)
		if err != nil {
			return nil, err
		}
		if svc != nil && profile.FullName == "" {
			profile.FullName = svc.OwnerName
		}
	}

	if routeLooksStale(profile.DashboardRoute) {
		profile.DashboardRoute = DashboardRouteFor(profile.PartnerType)
	}
	return profile, nil
}

// serviceResolver is the final fallback: a direct lookup in the generic
// services table by email.
type serviceResolver struct {
	repo servicerepo.ServiceRepository
}

func (r *serviceResolver) resolve(ctx context.Context, identifier, supplied string) (*model.PartnerProfile, error) {
	svc, err := r.repo.GetByEmail(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if svc == nil || !password.Verify(svc.Password, supplied) {
		return nil, nil
	}
	return &model.PartnerProfile{
		ID:             svc.ID,
		FullName:       svc.OwnerName,
		Email:          svc.Email,
		Phone:          svc.Phone,
		UserType:       "partner",
		PartnerType:    svc.PartnerType,
		DashboardRoute: DashboardRouteFor(svc.Category),
	}, nil
}
