// Package testutil provides test doubles for code that talks to an MWS
// endpoint.
//
// Service is an in-process fake of a single MWS section. It routes signed
// POST requests by their Action parameter, records every form it receives
// and optionally checks the HmacSHA256 signature:
//
//	svc := testutil.NewService(reports.Path, reports.Version).
//	    WithSecret("SK").
//	    Respond("GetReportCount", countXML)
//	testutil.T(t).Setup(svc)
//
//	c, _ := client.New(client.Config{Endpoint: svc.URL(), ...})
//
// Components follow a start/stop lifecycle with Reset, Snapshot and Restore
// for isolating table-driven cases that share one fake.
package testutil
