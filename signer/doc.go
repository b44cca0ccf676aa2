// Package signer turns canonical parameter pairs into a signed request body
// using signature version 2 with HmacSHA256.
//
// The control parameters (AWSAccessKeyId, SellerId, MWSAuthToken,
// SignatureMethod, SignatureVersion, Timestamp, Version, Action) are
// injected, every pair is sorted byte-wise and percent-encoded, and the
// string to sign is
//
//	POST\n<host>\n<path>\n<canonical string>
//
// The signature is base64(HMAC-SHA256(secret, string to sign)) and is
// appended to the canonical string as the Signature parameter to form the
// POST body.
package signer
