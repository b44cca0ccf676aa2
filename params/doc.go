// Package params flattens typed operation parameters into the canonical list
// of string key/value pairs the service signs and receives.
//
// Every encodable type implements Value. Records are composed from a declared
// field list rather than reflection:
//
//	func (p RequestReportParameters) EncodeParams(path string, pairs *params.Pairs) error {
//	    return params.Object{
//	        params.Field("ReportType", params.String(p.ReportType)),
//	        params.Field("StartDate", params.OptTime(p.StartDate)),
//	        params.Field("MarketplaceIdList", params.Strings("Id", p.MarketplaceIdList)),
//	    }.EncodeParams(path, pairs)
//	}
//
// Naming rules: a scalar field F encodes as F; list items as F.Item.1..n;
// nested object children as F.Child. Absent optionals and empty lists
// contribute nothing.
package params
