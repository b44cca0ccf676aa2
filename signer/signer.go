package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"time"

	"github.com/kbukum/mws/errors"
	"github.com/kbukum/mws/params"
	"github.com/kbukum/mws/validation"
)

// Signature constants sent with every request.
const (
	SignatureMethod  = "HmacSHA256"
	SignatureVersion = "2"
	method           = "POST"
	defaultScheme    = "https"
)

// Control parameter keys injected by Sign.
const (
	KeyAccessKeyID      = "AWSAccessKeyId"
	KeySellerID         = "SellerId"
	KeyAuthToken        = "MWSAuthToken"
	KeySignatureMethod  = "SignatureMethod"
	KeySignatureVersion = "SignatureVersion"
	KeyTimestamp        = "Timestamp"
	KeyVersion          = "Version"
	KeyAction           = "Action"
	KeySignature        = "Signature"
)

// Credentials identify the seller and hold the signing secret.
type Credentials struct {
	AccessKeyID string `mapstructure:"access_key_id" validate:"required"`
	SecretKey   string `mapstructure:"secret_key" validate:"required"`
	SellerID    string `mapstructure:"seller_id" validate:"required"`
	// AuthToken is set when calling on behalf of another seller.
	AuthToken string `mapstructure:"auth_token"`
}

// Validate fails with a configuration error naming the first missing field.
func (c Credentials) Validate() error {
	return validation.Validate(c)
}

// Request is one operation call before signing.
type Request struct {
	// Scheme defaults to https.
	Scheme  string
	Host    string
	Path    string
	Version string
	Action  string
	Params  params.Pairs
}

// Signed is a request ready for transmission.
type Signed struct {
	URL             string
	Body            string
	CanonicalString string
	StringToSign    string
	Signature       string
	Timestamp       time.Time
}

// Option configures a Signer.
type Option func(*Signer)

// WithClock replaces the clock used for the Timestamp parameter.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) { s.now = now }
}

// Signer signs requests with one set of credentials. It holds no mutable
// state and is safe for concurrent use.
type Signer struct {
	creds Credentials
	now   func() time.Time
}

// New validates creds and returns a Signer.
func New(creds Credentials, opts ...Option) (*Signer, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	s := &Signer{creds: creds, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Sign injects the control parameters, builds the canonical string and
// signs it. Caller parameters that collide with a control key are rejected.
func (s *Signer) Sign(req Request) (*Signed, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ts := s.now().UTC()
	control := params.Raw(
		KeyAccessKeyID, s.creds.AccessKeyID,
		KeySellerID, s.creds.SellerID,
		KeySignatureMethod, SignatureMethod,
		KeySignatureVersion, SignatureVersion,
		KeyTimestamp, params.FormatTime(ts),
		KeyVersion, req.Version,
		KeyAction, req.Action,
	)
	if s.creds.AuthToken != "" {
		control.Add(KeyAuthToken, s.creds.AuthToken)
	}

	all := make(params.Pairs, 0, len(req.Params)+len(control))
	all = append(all, req.Params...)
	all = append(all, control...)
	if err := checkUnique(all); err != nil {
		return nil, err
	}

	path := req.Path
	if path == "" {
		path = "/"
	}
	canonical := Canonical(all)
	stringToSign := strings.Join([]string{method, strings.ToLower(req.Host), path, canonical}, "\n")
	signature := Sum(s.creds.SecretKey, stringToSign)

	scheme := req.Scheme
	if scheme == "" {
		scheme = defaultScheme
	}

	return &Signed{
		URL:             scheme + "://" + req.Host + path,
		Body:            canonical + "&" + KeySignature + "=" + Escape(signature),
		CanonicalString: canonical,
		StringToSign:    stringToSign,
		Signature:       signature,
		Timestamp:       ts,
	}, nil
}

// Sum returns base64(HMAC-SHA256(secret, stringToSign)).
func Sum(secret, stringToSign string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(stringToSign))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func validateRequest(req Request) error {
	switch {
	case req.Host == "":
		return errors.Configuration("host", "endpoint host is required")
	case req.Action == "":
		return errors.Configuration("action", "operation name is required")
	case req.Version == "":
		return errors.Configuration("version", "operation version is required")
	case req.Path != "" && !strings.HasPrefix(req.Path, "/"):
		return errors.Configuration("path", "path must start with /")
	}
	return nil
}

func checkUnique(pairs params.Pairs) error {
	seen := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		if _, dup := seen[p.Key]; dup {
			return errors.Encoding(p.Key, "key emitted more than once")
		}
		seen[p.Key] = struct{}{}
	}
	return nil
}
