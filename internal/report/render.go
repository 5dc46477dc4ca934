package report

import (
	"sort"

	"GoldView/internal/domain/models"
)

// Session keys render in market-open order; unknown keys sort after the
// known ones, alphabetically.
var sessionRank = map[string]int{
	"sydney":  0,
	"tokyo":   1,
	"asia":    1,
	"london":  2,
	"newyork": 3,
}

// Render derives the full presentation view for one report: per-session
// rows in upstream order plus session summaries. It is a pure function;
// the external UI adapter only writes the returned structure to a
// surface. Per-record gaps degrade to fallback cells and never abort the
// pass; an empty session set returns ErrNoData.
func Render(rep *models.Report, cfg Config) (*models.RenderedView, error) {
	summaries, err := Aggregate(rep, cfg)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(rep.Sessions))
	for k := range rep.Sessions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, iok := sessionRank[keys[i]]
		rj, jok := sessionRank[keys[j]]
		switch {
		case iok && jok && ri != rj:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return keys[i] < keys[j]
		}
	})

	view := &models.RenderedView{
		Date:      rep.Date,
		Sessions:  make([]models.SessionRows, 0, len(keys)),
		Summaries: make([]models.SessionSummary, 0, len(keys)),
	}

	for _, key := range keys {
		records := rep.Sessions[key]
		rows := make([]models.Row, 0, len(records))
		for _, rec := range records {
			rows = append(rows, renderRow(rec, cfg))
		}
		view.Sessions = append(view.Sessions, models.SessionRows{Session: key, Rows: rows})
		view.Summaries = append(view.Summaries, summaries[key])
	}

	return view, nil
}

func renderRow(rec models.Record, cfg Config) models.Row {
	fields := ResolveFields(rec)
	tags := Classify(fields, cfg)

	return models.Row{
		TimeUTC:        fields.TimeUTC,
		TimeClient:     fields.TimeClient,
		Timeframe:      fields.Timeframe,
		Entity:         fields.EntityName,
		SubIndex:       fields.SubIndex,
		Ruler:          fields.Ruler,
		Quality:        fields.Quality,
		Bias:           fields.DirectionRaw,
		Score:          tags.ScoreText,
		TriggerPlanet:  fields.TriggerPlanet,
		Rationale:      fields.Rationale,
		HoraRuler:      fields.HoraRuler,
		Recommendation: fields.RecommendationRaw,
		PositionSize:   displayString(fields.PositionSize),
		Tags:           tags,
	}
}
