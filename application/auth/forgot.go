package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/campusnest/backend/constant"
	"github.com/campusnest/backend/model"
	"github.com/campusnest/backend/repository/token"
	"github.com/campusnest/backend/thirdparty/rabbitmq"
	"github.com/campusnest/backend/utils/errors"
	"github.com/campusnest/backend/utils/logger"
	"github.com/campusnest/backend/utils/password"
	"github.com/campusnest/backend/utils/randcode"
	"go.uber.org/zap"
)

// IssueOtp starts a forgot-password challenge. The account must already
// exist under the given kind. Issuing again overwrites any outstanding
// challenge for the identifier, so only the latest code verifies.
func (s *AuthAppImpl) IssueOtp(ctx context.Context, identifier string, kind constant.ChallengeKind) error {
	exists, err := s.accountExistsForKind(ctx, identifier, kind)
	if err != nil {
		logger.Error("[IssueOtp] err lookup", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	code, err := randcode.Numeric6()
	if err != nil {
		logger.Error("[IssueOtp] err generate code", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	challenge := model.OtpChallenge{
		Code:      code,
		Kind:      kind,
		ExpiresAt: time.Now().Add(s.config.Auth.OtpTTL),
	}
	raw, err := json.Marshal(challenge)
	if err != nil {
		return errors.SetCustomError(constant.ErrInternal)
	}

	key := token.PrefixOtp + strings.ToLower(identifier)
	if err := s.tokens.SetWithTTL(ctx, key, string(raw), s.config.Auth.OtpTTL); err != nil {
		logger.Error("[IssueOtp] err tokens.SetWithTTL", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.deliverCode(ctx, identifier, code); err != nil {
		logger.Error("[IssueOtp] err deliver", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrUpstream)
	}
	return nil
}

// VerifyOtp consumes a correct, unexpired code and mints a single-use reset
// token bound to the identifier and kind. Missing, mismatched and expired
// codes are indistinguishable to the caller.
func (s *AuthAppImpl) VerifyOtp(ctx context.Context, identifier, code string) (string, error) {
	key := token.PrefixOtp + strings.ToLower(identifier)

	raw, err := s.tokens.Get(ctx, key)
	if err != nil {
		logger.Error("[VerifyOtp] err tokens.Get", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if raw == "" {
		return "", errors.SetCustomError(constant.ErrInvalidOtp)
	}

	var challenge model.OtpChallenge
	if err := json.Unmarshal([]byte(raw), &challenge); err != nil {
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if challenge.Expired(time.Now()) {
		_ = s.tokens.Delete(ctx, key)
		return "", errors.SetCustomError(constant.ErrInvalidOtp)
	}
	if challenge.Code != code {
		return "", errors.SetCustomError(constant.ErrInvalidOtp)
	}

	if err := s.tokens.Delete(ctx, key); err != nil {
		logger.Error("[VerifyOtp] err tokens.Delete", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	resetToken, err := randcode.Hex32()
	if err != nil {
		logger.Error("[VerifyOtp] err generate token", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	grant := model.ResetGrant{
		Identifier: strings.ToLower(identifier),
		Kind:       challenge.Kind,
		ExpiresAt:  time.Now().Add(s.config.Auth.ResetTokenTTL),
	}
	rawGrant, err := json.Marshal(grant)
	if err != nil {
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.tokens.SetWithTTL(ctx, token.PrefixReset+resetToken, string(rawGrant), s.config.Auth.ResetTokenTTL); err != nil {
		logger.Error("[VerifyOtp] err tokens.SetWithTTL", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	return resetToken, nil
}

// ResetPassword exchanges a reset token for a completed password change. For
// partner grants the duplicated legacy credential is updated in the same
// transaction as the partner account row.
func (s *AuthAppImpl) ResetPassword(ctx context.Context, tokenStr, newPassword string) error {
	key := token.PrefixReset + tokenStr

	raw, err := s.tokens.Get(ctx, key)
	if err != nil {
		logger.Error("[ResetPassword] err tokens.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if raw == "" {
		return errors.SetCustomError(constant.ErrInvalidOrExpiredToken)
	}

	var grant model.ResetGrant
	if err := json.Unmarshal([]byte(raw), &grant); err != nil {
		return errors.SetCustomError(constant.ErrInternal)
	}
	if grant.Expired(time.Now()) {
		_ = s.tokens.Delete(ctx, key)
		return errors.SetCustomError(constant.ErrInvalidOrExpiredToken)
	}

	hashed, err := password.Hash(newPassword)
	if err != nil {
		logger.Error("[ResetPassword] err password.Hash", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	switch grant.Kind {
	case constant.ChallengeKindPartner:
		err = s.resetPartnerPassword(ctx, grant.Identifier, hashed)
	default:
		err = s.resetAccountPassword(ctx, grant.Identifier, hashed)
	}
	if err != nil {
		return err
	}

	if err := s.tokens.Delete(ctx, key); err != nil {
		logger.Error("[ResetPassword] err tokens.Delete", zap.String("error", err.Error()))
	}

	s.publishEvent(rabbitmq.EventPasswordReset, "", grant.Identifier, "")
	return nil
}

func (s *AuthAppImpl) resetAccountPassword(ctx context.Context, identifier, hashed string) error {
	account, err := s.findByIdentifier(ctx, identifier)
	if err != nil {
		logger.Error("[ResetPassword] err accountRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.accountRepo.Update(ctx, account.ID, &model.AccountUpdate{Password: &hashed}); err != nil {
		logger.Error("[ResetPassword] err accountRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// resetPartnerPassword writes the new credential to the partner account and
// its referenced legacy row together, or not at all.
func (s *AuthAppImpl) resetPartnerPassword(ctx context.Context, identifier, hashed string) error {
	partner, err := s.partnerRepo.Get(ctx, &model.PartnerFilter{Identifier: identifier})
	if err != nil {
		logger.Error("[ResetPassword] err partnerRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if partner == nil {
		return s.resetLegacyOnly(ctx, identifier, hashed)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ResetPassword] begin tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.partnerRepo.UpdatePasswordTx(ctx, tx, partner.ID, hashed); err != nil {
		logger.Error("[ResetPassword] err partner UpdatePasswordTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	switch partner.ReferenceTable {
	case constant.ReferenceAccommodation:
		err = s.accommodationRepo.UpdatePasswordTx(ctx, tx, partner.ReferenceID, hashed)
	case constant.ReferenceServices:
		err = s.serviceRepo.UpdatePasswordTx(ctx, tx, partner.ReferenceID, hashed)
	default:
		err = fmt.Errorf("unknown reference table %q", partner.ReferenceTable)
	}
	if err != nil {
		logger.Error("[ResetPassword] err legacy sync", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ResetPassword] commit tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// resetLegacyOnly covers partners that predate the unified account table.
func (s *AuthAppImpl) resetLegacyOnly(ctx context.Context, identifier, hashed string) error {
	listing, err := s.accommodationRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		logger.Error("[ResetPassword] err accommodationRepo.GetByIdentifier", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if listing != nil {
		if err := s.accommodationRepo.UpdatePasswordByEmail(ctx, listing.Email, hashed); err != nil {
			logger.Error("[ResetPassword] err accommodation UpdatePasswordByEmail", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	}

	svc, err := s.serviceRepo.GetByEmail(ctx, identifier)
	if err != nil {
		logger.Error("[ResetPassword] err serviceRepo.GetByEmail", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if svc == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err := s.serviceRepo.UpdatePasswordByEmail(ctx, svc.Email, hashed); err != nil {
		logger.Error("[ResetPassword] err service UpdatePasswordByEmail", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *AuthAppImpl) accountExistsForKind(ctx context.Context, identifier string, kind constant.ChallengeKind) (bool, error) {
	if kind == constant.ChallengeKindPartner {
		partner, err := s.partnerRepo.Get(ctx, &model.PartnerFilter{Identifier: identifier})
		if err != nil {
			return false, err
		}
		if partner != nil {
			return true, nil
		}
		listing, err := s.accommodationRepo.GetByIdentifier(ctx, identifier)
		if err != nil {
			return false, err
		}
		if listing != nil {
			return true, nil
		}
		svc, err := s.serviceRepo.GetByEmail(ctx, identifier)
		if err != nil {
			return false, err
		}
		return svc != nil, nil
	}

	account, err := s.findByIdentifier(ctx, identifier)
	if err != nil {
		return false, err
	}
	return account != nil, nil
}

func (s *AuthAppImpl) deliverCode(ctx context.Context, identifier, code string) error {
	message := fmt.Sprintf("Your CampusNest verification code is %s. It expires in %d minutes.",
		code, int(s.config.Auth.OtpTTL.Minutes()))

	if isEmail(identifier) {
		return s.mail.Send(identifier, "Your verification code", "<p>"+message+"</p>")
	}
	return s.sms.Send(ctx, identifier, message)
}
