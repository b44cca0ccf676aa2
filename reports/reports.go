package reports

import (
	"context"
	"io"
	"iter"
	"time"

	"github.com/kbukum/mws/client"
	"github.com/kbukum/mws/envelope"
	"github.com/kbukum/mws/errors"
	"github.com/kbukum/mws/params"
	"github.com/kbukum/mws/xmldecode"
)

const (
	Path    = "/"
	Version = "2009-01-01"
)

func op(action string) client.Operation {
	return client.Operation{Path: Path, Version: Version, Action: action}
}

func nextToken(token string) params.Pairs {
	return params.Raw("NextToken", token)
}

// GetReportListParams filters GetReportList. Zero fields are omitted.
type GetReportListParams struct {
	MaxCount          *int
	ReportTypes       []string
	Acknowledged      *bool
	AvailableFromDate *time.Time
	AvailableToDate   *time.Time
	ReportRequestIDs  []string
}

// EncodeParams implements params.Value.
func (p GetReportListParams) EncodeParams(path string, pairs *params.Pairs) error {
	return params.Object{
		params.Field("MaxCount", params.OptInt(p.MaxCount)),
		params.Field("ReportTypeList", params.Strings("Type", p.ReportTypes)),
		params.Field("Acknowledged", params.OptBool(p.Acknowledged)),
		params.Field("AvailableFromDate", params.OptTime(p.AvailableFromDate)),
		params.Field("AvailableToDate", params.OptTime(p.AvailableToDate)),
		params.Field("ReportRequestIdList", params.Strings("Id", p.ReportRequestIDs)),
	}.EncodeParams(path, pairs)
}

// GetReportList returns reports created in the previous 90 days.
func GetReportList(ctx context.Context, c *client.Client, p GetReportListParams) (*envelope.Response[ReportList], error) {
	return client.Invoke(ctx, c, op("GetReportList"), p, xmldecode.Struct[ReportList]())
}

// GetReportListByNextToken continues GetReportList.
func GetReportListByNextToken(ctx context.Context, c *client.Client, token string) (*envelope.Response[ReportList], error) {
	return client.Invoke(ctx, c, op("GetReportListByNextToken"), nextToken(token), xmldecode.Struct[ReportList]())
}

// ReportListPages iterates over every page of GetReportList.
func ReportListPages(ctx context.Context, c *client.Client, p GetReportListParams) iter.Seq2[*envelope.Response[ReportList], error] {
	return client.Pages(ctx,
		func(ctx context.Context) (*envelope.Response[ReportList], error) { return GetReportList(ctx, c, p) },
		func(ctx context.Context, token string) (*envelope.Response[ReportList], error) {
			return GetReportListByNextToken(ctx, c, token)
		},
	)
}

// GetReport streams the body of a report into w. The result carries the
// byte count and the Content-MD5 announced by the service.
func GetReport(ctx context.Context, c *client.Client, reportID string, w io.Writer) (*client.Download, error) {
	if reportID == "" {
		return nil, errors.Encoding("ReportId", "required value is empty")
	}
	return c.Download(ctx, op("GetReport"), params.Raw("ReportId", reportID), w)
}

// GetReportRequestListParams filters GetReportRequestList.
type GetReportRequestListParams struct {
	MaxCount          *int
	ReportTypes       []string
	RequestedFromDate *time.Time
	RequestedToDate   *time.Time
	ReportRequestIDs  []string
	Statuses          []ReportProcessingStatus
}

// EncodeParams implements params.Value.
func (p GetReportRequestListParams) EncodeParams(path string, pairs *params.Pairs) error {
	return params.Object{
		params.Field("MaxCount", params.OptInt(p.MaxCount)),
		params.Field("ReportTypeList", params.Strings("Type", p.ReportTypes)),
		params.Field("RequestedFromDate", params.OptTime(p.RequestedFromDate)),
		params.Field("RequestedToDate", params.OptTime(p.RequestedToDate)),
		params.Field("ReportRequestIdList", params.Strings("Id", p.ReportRequestIDs)),
		params.Field("ReportProcessingStatusList", params.ListOf("Status", p.Statuses,
			func(s ReportProcessingStatus) params.Value { return s })),
	}.EncodeParams(path, pairs)
}

// GetReportRequestList returns report requests matching p.
func GetReportRequestList(ctx context.Context, c *client.Client, p GetReportRequestListParams) (*envelope.Response[ReportRequestList], error) {
	return client.Invoke(ctx, c, op("GetReportRequestList"), p, xmldecode.Struct[ReportRequestList]())
}

// GetReportRequestListByNextToken continues GetReportRequestList.
func GetReportRequestListByNextToken(ctx context.Context, c *client.Client, token string) (*envelope.Response[ReportRequestList], error) {
	return client.Invoke(ctx, c, op("GetReportRequestListByNextToken"), nextToken(token), xmldecode.Struct[ReportRequestList]())
}

// ReportRequestListPages iterates over every page of GetReportRequestList.
func ReportRequestListPages(ctx context.Context, c *client.Client, p GetReportRequestListParams) iter.Seq2[*envelope.Response[ReportRequestList], error] {
	return client.Pages(ctx,
		func(ctx context.Context) (*envelope.Response[ReportRequestList], error) {
			return GetReportRequestList(ctx, c, p)
		},
		func(ctx context.Context, token string) (*envelope.Response[ReportRequestList], error) {
			return GetReportRequestListByNextToken(ctx, c, token)
		},
	)
}

// RequestReportParams describes a report to generate.
type RequestReportParams struct {
	ReportType     string
	StartDate      *time.Time
	EndDate        *time.Time
	ReportOptions  *string
	MarketplaceIDs []string
}

// EncodeParams implements params.Value.
func (p RequestReportParams) EncodeParams(path string, pairs *params.Pairs) error {
	if p.ReportType == "" {
		return errors.Encoding(params.Join(path, "ReportType"), "required value is empty")
	}
	return params.Object{
		params.Field("ReportType", params.String(p.ReportType)),
		params.Field("StartDate", params.OptTime(p.StartDate)),
		params.Field("EndDate", params.OptTime(p.EndDate)),
		params.Field("ReportOptions", params.OptString(p.ReportOptions)),
		params.Field("MarketplaceIdList", params.Strings("Id", p.MarketplaceIDs)),
	}.EncodeParams(path, pairs)
}

// RequestReport asks the service to generate a report.
func RequestReport(ctx context.Context, c *client.Client, p RequestReportParams) (*envelope.Response[RequestReportResult], error) {
	return client.Invoke(ctx, c, op("RequestReport"), p, xmldecode.Struct[RequestReportResult]())
}

// ManageReportScheduleParams creates, updates or deletes the schedule of a
// report type. Schedule "_NEVER_" deletes it.
type ManageReportScheduleParams struct {
	ReportType   string
	Schedule     *string
	ScheduleDate *time.Time
}

// EncodeParams implements params.Value.
func (p ManageReportScheduleParams) EncodeParams(path string, pairs *params.Pairs) error {
	if p.ReportType == "" {
		return errors.Encoding(params.Join(path, "ReportType"), "required value is empty")
	}
	return params.Object{
		params.Field("ReportType", params.String(p.ReportType)),
		params.Field("Schedule", params.OptString(p.Schedule)),
		params.Field("ScheduleDate", params.OptTime(p.ScheduleDate)),
	}.EncodeParams(path, pairs)
}

// ManageReportSchedule changes a report request schedule.
func ManageReportSchedule(ctx context.Context, c *client.Client, p ManageReportScheduleParams) (*envelope.Response[ScheduleResult], error) {
	return client.Invoke(ctx, c, op("ManageReportSchedule"), p, xmldecode.Struct[ScheduleResult]())
}

// ReportTypes filters schedule queries by report type.
type ReportTypes []string

// EncodeParams implements params.Value.
func (t ReportTypes) EncodeParams(path string, pairs *params.Pairs) error {
	return params.Object{
		params.Field("ReportTypeList", params.Strings("Type", t)),
	}.EncodeParams(path, pairs)
}

// GetReportScheduleList returns the scheduled report requests.
func GetReportScheduleList(ctx context.Context, c *client.Client, types ReportTypes) (*envelope.Response[ScheduleList], error) {
	return client.Invoke(ctx, c, op("GetReportScheduleList"), types, xmldecode.Struct[ScheduleList]())
}

// GetReportScheduleCount returns how many report requests are scheduled.
func GetReportScheduleCount(ctx context.Context, c *client.Client, types ReportTypes) (*envelope.Response[ScheduleCount], error) {
	return client.Invoke(ctx, c, op("GetReportScheduleCount"), types, xmldecode.Struct[ScheduleCount]())
}

// UpdateReportAcknowledgementsParams sets the acknowledged flag of reports.
type UpdateReportAcknowledgementsParams struct {
	ReportIDs    []string
	Acknowledged *bool
}

// EncodeParams implements params.Value.
func (p UpdateReportAcknowledgementsParams) EncodeParams(path string, pairs *params.Pairs) error {
	if len(p.ReportIDs) == 0 {
		return errors.Encoding(params.Join(path, "ReportIdList"), "at least one report id is required")
	}
	return params.Object{
		params.Field("ReportIdList", params.Strings("Id", p.ReportIDs)),
		params.Field("Acknowledged", params.OptBool(p.Acknowledged)),
	}.EncodeParams(path, pairs)
}

// UpdateReportAcknowledgements updates the acknowledged status of reports.
func UpdateReportAcknowledgements(ctx context.Context, c *client.Client, p UpdateReportAcknowledgementsParams) (*envelope.Response[AcknowledgementResult], error) {
	return client.Invoke(ctx, c, op("UpdateReportAcknowledgements"), p, xmldecode.Struct[AcknowledgementResult]())
}
