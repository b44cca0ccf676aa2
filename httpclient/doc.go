// Package httpclient is the HTTPS transport beneath the service client. It
// sends pre-signed form bodies and hands back the raw response stream; it
// never interprets status codes or bodies.
//
// Connection-level failures are reported as transport errors, and failures
// caused by an expired context as timeout errors.
//
//	t, err := httpclient.New(httpclient.Config{Timeout: 30 * time.Second})
//
//	resp, err := t.DoStream(ctx, httpclient.Request{
//	    URL:  signed.URL,
//	    Body: signed.Body,
//	})
//	defer resp.Close()
package httpclient
