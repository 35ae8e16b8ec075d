// Package analytics turns materialized business records into dashboard
// metrics, period trends, inventory insights, chart series and reports.
//
// Everything here is a pure function of its inputs except the Aggregator,
// which issues concurrent count and sum queries through an
// AnalyticsRepository.
package analytics
