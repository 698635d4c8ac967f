package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"task-manager-api/internal/core/database"
	"task-manager-api/internal/transport/http/router"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			gin.SetMode(gin.ReleaseMode)
			// the table does not depend on the store; an in-memory one is enough
			db, err := database.NewGorm(database.Opts{Driver: "sqlite", DSN: ":memory:", MaxOpenConns: 1, LogLevel: "silent"})
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			var routes gin.RoutesInfo
			for _, r := range router.NewAPIEngine(zap.NewNop(), db, router.Options{}).Routes() {
				if r.Path != "/" && strings.HasSuffix(r.Path, "/") {
					continue // trailing slash twin
				}
				routes = append(routes, r)
			}
			sort.Slice(routes, func(i, j int) bool {
				if routes[i].Path != routes[j].Path {
					return routes[i].Path < routes[j].Path
				}
				return routes[i].Method < routes[j].Method
			})
			out := cmd.OutOrStdout()
			for _, r := range routes {
				fmt.Fprintf(out, "%-7s %s\n", r.Method, r.Path)
			}
			return nil
		},
	}
}
