// Package client implements the HTTP transport to a deckcalc calculation
// server.
//
// The form controller depends only on a Calculator interface; Client is the
// production implementation. It sends a single JSON POST to /calculate per
// call and decodes the JSON estimate.
//
// There is deliberately no retry, caching or client-side timeout: a call
// runs until the server answers, the transport gives up, or the caller's
// context is cancelled.
//
// # Errors
//
// Every failure is a *CalcError with a Type:
//   - ErrTypeNetwork, ErrTypeTimeout, ErrTypeConnectionRefused, ErrTypeDNS:
//     the request did not complete
//   - ErrTypeHTTP: the server answered with a non-2xx status
//   - ErrTypeParse: the response body was not a valid estimate
//
// ShortMessage turns any of these into a one-line description for the CLI.
//
// # Usage Example
//
//	c := client.New("http://localhost:5000")
//	est, err := c.Calculate(ctx, estimate.Request{Length: 12, Width: 10})
//	if err != nil {
//	    fmt.Println(client.ShortMessage(err))
//	}
package client
