package cmd

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"

	"github.com/gregLibert/oathmfa/pkg/credentials"
	"github.com/gregLibert/oathmfa/pkg/tokencode"
)

// cachedProfileName keys the on-disk cache the same way the original tool
// does: by the long-lived access key the session credentials were minted
// against, not by a human-chosen profile alias.
func cachedProfileName(sess *session.Session) (string, error) {
	v, err := sess.Config.Credentials.Get()
	if err != nil {
		return "", fmt.Errorf("reading base credentials: %w", err)
	}
	return "mfa/" + v.AccessKeyID, nil
}

// authenticate returns fresh session credentials for sess, reusing a cached
// set if one is still within the refresh margin and minting a new one
// through the hardware/prompt token code otherwise.
func authenticate(sess *session.Session, cache *credentials.Cache) (*credentials.SessionCredentials, error) {
	profile, err := cachedProfileName(sess)
	if err != nil {
		return nil, err
	}

	if cp, ok := cache.Load(profile); ok {
		if cp.Fresh(time.Now()) {
			return &credentials.SessionCredentials{
				AccessKeyID:     cp.AccessKeyID,
				SecretAccessKey: cp.SecretAccessKey,
				SessionToken:    cp.SessionToken,
				Expiration:      cp.Expiration,
			}, nil
		}
	}

	identity, err := credentials.ResolveIdentity(sess)
	if err != nil {
		return nil, fmt.Errorf("resolving caller identity: %w", err)
	}

	code, err := tokencode.Get(identity.Issuer)
	if err != nil {
		return nil, fmt.Errorf("getting token code: %w", err)
	}

	sc, err := credentials.GetSessionToken(sess, identity, code)
	if err != nil {
		return nil, err
	}

	cp := &credentials.CachedProfile{
		AccessKeyID:     sc.AccessKeyID,
		SecretAccessKey: sc.SecretAccessKey,
		SessionToken:    sc.SessionToken,
		Expiration:      sc.Expiration,
	}
	if err := cache.Store(profile, cp); err != nil {
		return nil, fmt.Errorf("caching session credentials: %w", err)
	}

	return sc, nil
}

func openCache(path string) (*credentials.Cache, error) {
	if path == "" {
		var err error
		path, err = credentials.DefaultCachePath()
		if err != nil {
			return nil, err
		}
	}
	return &credentials.Cache{Path: path}, nil
}
