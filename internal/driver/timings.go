package driver

import (
	"fmt"

	"github.com/Lkuropatkina/HSEproject/internal/diag"
	"github.com/Lkuropatkina/HSEproject/internal/observ"
	"github.com/Lkuropatkina/HSEproject/internal/source"
)

// appendTimingDiagnostic упаковывает отчёт таймера в ObsTimings-диагностику:
// сообщение несёт итог, заметки - по строке на фазу.
func appendTimingDiagnostic(bag *diag.Bag, report observ.Report, path string) {
	if bag == nil || len(report.Phases) == 0 {
		return
	}

	msg := fmt.Sprintf("timings: total %.3f ms", report.TotalMS)
	if path != "" {
		msg = fmt.Sprintf("timings (%s): total %.3f ms", path, report.TotalMS)
	}

	d := diag.New(diag.SevInfo, diag.ObsTimings, source.Span{}, msg)
	for _, phase := range report.Phases {
		line := fmt.Sprintf("%s: %.3f ms", phase.Name, phase.DurationMS)
		if phase.Note != "" {
			line += " (" + phase.Note + ")"
		}
		d = d.WithNote(source.Span{}, line)
	}

	if bag.Add(d) {
		return
	}
	// тайминги не должны пропадать из-за лимита диагностик
	overflow := diag.NewBag(1)
	overflow.Add(d)
	bag.Merge(overflow)
}
