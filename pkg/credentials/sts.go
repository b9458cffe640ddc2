// Package credentials trades a TOTP for temporary AWS session credentials
// and caches them on disk. Neither concern is part of the OATH core; both
// are the "external collaborators" the core's design only specifies a seam
// for.
package credentials

import (
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/iam"
	"github.com/aws/aws-sdk-go/service/sts"
)

// SessionCredentials is the temporary credential set STS hands back.
type SessionCredentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Expiration      time.Time
}

// Identity is the long-lived caller's account/user, resolved once per run
// so the MFA serial number and issuer string can be built from it.
type Identity struct {
	Account  string
	UserName string
	Issuer   string
}

// ResolveIdentity calls sts:GetCallerIdentity and iam:ListAccountAliases to
// build the identity used both for the MFA serial number and for the
// issuer string presented to the token source.
func ResolveIdentity(sess *session.Session) (*Identity, error) {
	callerOut, err := sts.New(sess).GetCallerIdentity(&sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("sts get-caller-identity: %w", err)
	}

	account := aws.StringValue(callerOut.Account)
	arn := aws.StringValue(callerOut.Arn)
	prefix := fmt.Sprintf("arn:aws:iam::%s:user/", account)
	if !strings.HasPrefix(arn, prefix) {
		return nil, fmt.Errorf("cannot detect user name from user ARN %q", arn)
	}
	userName := arn[len(prefix):]

	aliasOut, err := iam.New(sess).ListAccountAliases(&iam.ListAccountAliasesInput{})
	if err != nil {
		return nil, fmt.Errorf("iam list-account-aliases: %w", err)
	}

	// The original falls back to the raw account ID when the account has no
	// alias, rather than treating it as fatal.
	alias := account
	if len(aliasOut.AccountAliases) > 0 {
		alias = aws.StringValue(aliasOut.AccountAliases[0])
	}

	return &Identity{
		Account:  account,
		UserName: userName,
		Issuer:   fmt.Sprintf("Amazon Web Services:%s@%s", userName, alias),
	}, nil
}

// GetSessionToken exchanges tokenCode for temporary session credentials
// scoped to identity's virtual MFA device.
func GetSessionToken(sess *session.Session, identity *Identity, tokenCode string) (*SessionCredentials, error) {
	serial := fmt.Sprintf("arn:aws:iam::%s:mfa/%s", identity.Account, identity.UserName)

	out, err := sts.New(sess).GetSessionToken(&sts.GetSessionTokenInput{
		SerialNumber: aws.String(serial),
		TokenCode:    aws.String(tokenCode),
	})
	if err != nil {
		return nil, fmt.Errorf("sts get-session-token: %w", err)
	}

	c := out.Credentials
	return &SessionCredentials{
		AccessKeyID:     aws.StringValue(c.AccessKeyId),
		SecretAccessKey: aws.StringValue(c.SecretAccessKey),
		SessionToken:    aws.StringValue(c.SessionToken),
		Expiration:      aws.TimeValue(c.Expiration),
	}, nil
}
