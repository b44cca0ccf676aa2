package reports

import (
	"time"

	"github.com/kbukum/mws/envelope"
	"github.com/kbukum/mws/strenum"
	"github.com/kbukum/mws/xmldecode"
)

// ProcessingStatus is the state of a report request.
type ProcessingStatus int

const (
	StatusUnknown ProcessingStatus = iota
	StatusSubmitted
	StatusInProgress
	StatusCancelled
	StatusDone
	StatusDoneNoData
)

// ProcessingStatuses maps statuses to their wire names.
var ProcessingStatuses = strenum.NewSet(map[ProcessingStatus]string{
	StatusSubmitted:  "_SUBMITTED_",
	StatusInProgress: "_IN_PROGRESS_",
	StatusCancelled:  "_CANCELLED_",
	StatusDone:       "_DONE_",
	StatusDoneNoData: "_DONE_NO_DATA_",
})

// ReportProcessingStatus keeps unrecognized statuses verbatim.
type ReportProcessingStatus = strenum.Value[ProcessingStatus]

// ReportInfo describes a generated report.
type ReportInfo struct {
	ReportID         string
	ReportType       string
	ReportRequestID  string
	AvailableDate    time.Time
	Acknowledged     bool
	AcknowledgedDate *time.Time
}

// DecodeField implements xmldecode.Fields.
func (r *ReportInfo) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "ReportId":
		return xmldecode.Into(c, &r.ReportID, xmldecode.String)
	case "ReportType":
		return xmldecode.Into(c, &r.ReportType, xmldecode.String)
	case "ReportRequestId":
		return xmldecode.Into(c, &r.ReportRequestID, xmldecode.String)
	case "AvailableDate":
		return xmldecode.Into(c, &r.AvailableDate, xmldecode.Time)
	case "Acknowledged":
		return xmldecode.Into(c, &r.Acknowledged, xmldecode.Bool)
	case "AcknowledgedDate":
		return xmldecode.Into(c, &r.AcknowledgedDate, xmldecode.Optional(xmldecode.Time))
	}
	return nil
}

// ReportRequestInfo describes a report request and its progress.
type ReportRequestInfo struct {
	ReportRequestID        string
	ReportType             string
	StartDate              *time.Time
	EndDate                *time.Time
	Scheduled              bool
	SubmittedDate          *time.Time
	ReportProcessingStatus ReportProcessingStatus
	GeneratedReportID      *string
	StartedProcessingDate  *time.Time
	CompletedDate          *time.Time
}

// DecodeField implements xmldecode.Fields.
func (r *ReportRequestInfo) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "ReportRequestId":
		return xmldecode.Into(c, &r.ReportRequestID, xmldecode.String)
	case "ReportType":
		return xmldecode.Into(c, &r.ReportType, xmldecode.String)
	case "StartDate":
		return xmldecode.Into(c, &r.StartDate, xmldecode.Optional(xmldecode.Time))
	case "EndDate":
		return xmldecode.Into(c, &r.EndDate, xmldecode.Optional(xmldecode.Time))
	case "Scheduled":
		return xmldecode.Into(c, &r.Scheduled, xmldecode.Bool)
	case "SubmittedDate":
		return xmldecode.Into(c, &r.SubmittedDate, xmldecode.Optional(xmldecode.Time))
	case "ReportProcessingStatus":
		return xmldecode.Into(c, &r.ReportProcessingStatus, ProcessingStatuses.Decode)
	case "GeneratedReportId":
		return xmldecode.Into(c, &r.GeneratedReportID, xmldecode.Optional(xmldecode.String))
	case "StartedProcessingDate":
		return xmldecode.Into(c, &r.StartedProcessingDate, xmldecode.Optional(xmldecode.Time))
	case "CompletedDate":
		return xmldecode.Into(c, &r.CompletedDate, xmldecode.Optional(xmldecode.Time))
	}
	return nil
}

// ReportSchedule describes a scheduled report request.
type ReportSchedule struct {
	ReportType    string
	Schedule      string
	ScheduledDate *time.Time
}

// DecodeField implements xmldecode.Fields.
func (r *ReportSchedule) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "ReportType":
		return xmldecode.Into(c, &r.ReportType, xmldecode.String)
	case "Schedule":
		return xmldecode.Into(c, &r.Schedule, xmldecode.String)
	case "ScheduledDate":
		return xmldecode.Into(c, &r.ScheduledDate, xmldecode.Optional(xmldecode.Time))
	}
	return nil
}

// ReportList is one page of GetReportList.
type ReportList struct {
	envelope.Page
	Reports []ReportInfo
}

// DecodeField implements xmldecode.Fields.
func (l *ReportList) DecodeField(c *xmldecode.Cursor) error {
	if ok, err := l.DecodePage(c); ok {
		return err
	}
	if c.LocalName() == "ReportInfo" {
		return xmldecode.Append(c, &l.Reports, xmldecode.Struct[ReportInfo]())
	}
	return nil
}

// ReportRequestList is one page of GetReportRequestList.
type ReportRequestList struct {
	envelope.Page
	Requests []ReportRequestInfo
}

// DecodeField implements xmldecode.Fields.
func (l *ReportRequestList) DecodeField(c *xmldecode.Cursor) error {
	if ok, err := l.DecodePage(c); ok {
		return err
	}
	if c.LocalName() == "ReportRequestInfo" {
		return xmldecode.Append(c, &l.Requests, xmldecode.Struct[ReportRequestInfo]())
	}
	return nil
}

// RequestReportResult acknowledges a new report request.
type RequestReportResult struct {
	ReportRequestInfo ReportRequestInfo
}

// DecodeField implements xmldecode.Fields.
func (r *RequestReportResult) DecodeField(c *xmldecode.Cursor) error {
	if c.LocalName() == "ReportRequestInfo" {
		return xmldecode.Into(c, &r.ReportRequestInfo, xmldecode.Struct[ReportRequestInfo]())
	}
	return nil
}

// ScheduleResult lists the schedules affected by ManageReportSchedule.
type ScheduleResult struct {
	Count     int
	Schedules []ReportSchedule
}

// DecodeField implements xmldecode.Fields.
func (r *ScheduleResult) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "Count":
		return xmldecode.Into(c, &r.Count, xmldecode.Int)
	case "ReportSchedule":
		return xmldecode.Append(c, &r.Schedules, xmldecode.Struct[ReportSchedule]())
	}
	return nil
}

// ScheduleList is one page of GetReportScheduleList.
type ScheduleList struct {
	envelope.Page
	Schedules []ReportSchedule
}

// DecodeField implements xmldecode.Fields.
func (l *ScheduleList) DecodeField(c *xmldecode.Cursor) error {
	if ok, err := l.DecodePage(c); ok {
		return err
	}
	if c.LocalName() == "ReportSchedule" {
		return xmldecode.Append(c, &l.Schedules, xmldecode.Struct[ReportSchedule]())
	}
	return nil
}

// ScheduleCount is the result of GetReportScheduleCount.
type ScheduleCount struct {
	Count int
}

// DecodeField implements xmldecode.Fields.
func (r *ScheduleCount) DecodeField(c *xmldecode.Cursor) error {
	if c.LocalName() == "Count" {
		return xmldecode.Into(c, &r.Count, xmldecode.Int)
	}
	return nil
}

// AcknowledgementResult lists the reports whose acknowledged flag changed.
type AcknowledgementResult struct {
	Count   int
	Reports []ReportInfo
}

// DecodeField implements xmldecode.Fields.
func (r *AcknowledgementResult) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "Count":
		return xmldecode.Into(c, &r.Count, xmldecode.Int)
	case "ReportInfo":
		return xmldecode.Append(c, &r.Reports, xmldecode.Struct[ReportInfo]())
	}
	return nil
}
