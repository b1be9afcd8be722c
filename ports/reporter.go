package ports

import (
	"gosupport/domain/stats"
)

// Reporter is the boundary with the reporting/plotting collaborator. It
// consumes finished result records and produces nothing the core reads back.
type Reporter interface {
	ReportOneWay(result *stats.OneWayResult) error
	ReportTwoWay(result *stats.TwoWayResult) error
	ReportANOVA(result *stats.ANOVAResult) error
}
