// Package reports calls the Reports section (version 2009-01-01): listing
// and requesting reports, downloading report bodies, and managing report
// schedules and acknowledgements.
package reports
