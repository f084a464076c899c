package dashboard

import (
	"net/http"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/qepting91/license-bot/internal/storage"
)

// StartServer serves the status dashboard on "/", prometheus metrics on
// "/metrics", and a liveness probe on "/health". Blocks until the listener
// fails.
func StartServer(replyLogPath string, port string) error {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		recs := storage.ReadReplyLog(replyLogPath)

		// 1. Replies by repository owner
		pie := charts.NewPie()
		pie.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: "Replies by Repository Owner"}),
			charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		)

		ownerCounts := make(map[string]int)
		for _, rec := range recs {
			ownerCounts[rec.Owner]++
		}

		var pieItems []opts.PieData
		for k, v := range ownerCounts {
			pieItems = append(pieItems, opts.PieData{Name: k, Value: v})
		}
		pie.AddSeries("Replies", pieItems)

		// 2. Replies per day
		bar := charts.NewBar()
		bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Replies per Day"}))

		dayCounts := make(map[string]int)
		for _, rec := range recs {
			dayCounts[rec.RepliedAt.Format("2006-01-02")]++
		}

		days := make([]string, 0, len(dayCounts))
		for d := range dayCounts {
			days = append(days, d)
		}
		sort.Strings(days)

		var barY []opts.BarData
		for _, d := range days {
			barY = append(barY, opts.BarData{Value: dayCounts[d]})
		}
		bar.SetXAxis(days).AddSeries("Replies", barY)

		pie.Render(w)
		bar.Render(w)
	})

	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return http.ListenAndServe(":"+port, mux)
}
