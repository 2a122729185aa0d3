package partner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/campusnest/backend/constant"
	"github.com/campusnest/backend/model"
	"github.com/campusnest/backend/repository/token"
	"github.com/campusnest/backend/utils/errors"
	"github.com/campusnest/backend/utils/logger"
	"github.com/campusnest/backend/utils/password"
	"github.com/campusnest/backend/utils/randcode"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// The partner self-service flow is stricter than the general ledger: the
// code is stored as a salted hash, never in the clear, and the new password
// is always written as a bcrypt hash. It uses its own key namespace so the
// two ledgers cannot cross.

func (s *PartnerAppImpl) SendOtp(ctx context.Context, email string) error {
	email = strings.ToLower(email)

	exists, err := s.partnerExists(ctx, email)
	if err != nil {
		logger.Error("[SendOtp] err lookup", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	code, err := randcode.Numeric6()
	if err != nil {
		logger.Error("[SendOtp] err generate code", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	hashedCode, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[SendOtp] err hash code", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	challenge := model.OtpChallenge{
		Code:      string(hashedCode),
		Hashed:    true,
		Kind:      constant.ChallengeKindPartner,
		ExpiresAt: time.Now().Add(s.config.Auth.OtpTTL),
	}
	raw, err := json.Marshal(challenge)
	if err != nil {
		return errors.SetCustomError(constant.ErrInternal)
	}

	key := token.PrefixPartnerOtp + email
	if err := s.tokens.SetWithTTL(ctx, key, string(raw), s.config.Auth.OtpTTL); err != nil {
		logger.Error("[SendOtp] err tokens.SetWithTTL", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	body := fmt.Sprintf("<p>Your CampusNest partner verification code is %s. It expires in %d minutes.</p>",
		code, int(s.config.Auth.OtpTTL.Minutes()))
	if err := s.mail.Send(email, "Partner password reset code", body); err != nil {
		logger.Error("[SendOtp] err mail.Send", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrUpstream)
	}
	return nil
}

func (s *PartnerAppImpl) VerifyOtp(ctx context.Context, email, code string) (string, error) {
	email = strings.ToLower(email)
	key := token.PrefixPartnerOtp + email

	raw, err := s.tokens.Get(ctx, key)
	if err != nil {
		logger.Error("[PartnerVerifyOtp] err tokens.Get", zap.String("error", err.Error()))
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
	if bcrypt.CompareHashAndPassword([]byte(challenge.Code), []byte(code)) != nil {
		return "", errors.SetCustomError(constant.ErrInvalidOtp)
	}

	if err := s.tokens.Delete(ctx, key); err != nil {
		logger.Error("[PartnerVerifyOtp] err tokens.Delete", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	resetToken, err := randcode.Hex32()
	if err != nil {
		logger.Error("[PartnerVerifyOtp] err generate token", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	grant := model.ResetGrant{
		Identifier: email,
		Kind:       constant.ChallengeKindPartner,
		ExpiresAt:  time.Now().Add(s.config.Auth.ResetTokenTTL),
	}
	rawGrant, err := json.Marshal(grant)
	if err != nil {
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.tokens.SetWithTTL(ctx, token.PrefixPartnerReset+resetToken, string(rawGrant), s.config.Auth.ResetTokenTTL); err != nil {
		logger.Error("[PartnerVerifyOtp] err tokens.SetWithTTL", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	return resetToken, nil
}

// ResetPassword consumes a partner reset token and writes the bcrypt-hashed
// password to the partner account and its referenced legacy row in one
// transaction.
func (s *PartnerAppImpl) ResetPassword(ctx context.Context, tokenStr, newPassword string) error {
	key := token.PrefixPartnerReset + tokenStr

	raw, err := s.tokens.Get(ctx, key)
	if err != nil {
		logger.Error("[PartnerResetPassword] err tokens.Get", zap.String("error", err.Error()))
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
		logger.Error("[PartnerResetPassword] err password.Hash", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.writePartnerPassword(ctx, grant.Identifier, hashed); err != nil {
		return err
	}

	if err := s.tokens.Delete(ctx, key); err != nil {
		logger.Error("[PartnerResetPassword] err tokens.Delete", zap.String("error", err.Error()))
	}
	return nil
}

func (s *PartnerAppImpl) writePartnerPassword(ctx context.Context, email, hashed string) error {
	account, err := s.partnerRepo.Get(ctx, &model.PartnerFilter{Email: email})
	if err != nil {
		logger.Error("[PartnerResetPassword] err partnerRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[PartnerResetPassword] begin tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.partnerRepo.UpdatePasswordTx(ctx, tx, account.ID, hashed); err != nil {
		logger.Error("[PartnerResetPassword] err UpdatePasswordTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	switch account.ReferenceTable {
	case constant.ReferenceAccommodation:
		err = s.accommodationRepo.UpdatePasswordTx(ctx, tx, account.ReferenceID, hashed)
	case constant.ReferenceServices:
		err = s.serviceRepo.UpdatePasswordTx(ctx, tx, account.ReferenceID, hashed)
	default:
		err = fmt.Errorf("unknown reference table %q", account.ReferenceTable)
	}
	if err != nil {
		logger.Error("[PartnerResetPassword] err legacy sync", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[PartnerResetPassword] commit tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *PartnerAppImpl) partnerExists(ctx context.Context, email string) (bool, error) {
	account, err := s.partnerRepo.Get(ctx, &model.PartnerFilter{Email: email})
	if err != nil {
		return false, err
	}
	if account != nil {
		return true, nil
	}
	listing, err := s.accommodationRepo.GetByIdentifier(ctx, email)
	if err != nil {
		return false, err
	}
	if listing != nil {
		return true, nil
	}
	svc, err := s.serviceRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return svc != nil, nil
}
