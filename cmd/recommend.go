package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/job-recommender/internal/jobboard"
	"github.com/spigell/job-recommender/internal/logger"
	"github.com/spigell/job-recommender/internal/recommend"
	"github.com/spigell/job-recommender/internal/service"
)

const (
	PromptDone                = "Done"
	PromptReportByCompanies   = "Report by companies"
	PromptResultsToFile       = "Dump recommendations to file"
	PromptAppendToExcludeFile = "Append recommendations to exclude file"

	excludeReasonRecommended = "already recommended"
)

var errExit = errors.New("exit requested")

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank jobs from the jobs file against the candidate profile",
	Run: func(cmd *cobra.Command, _ []string) {
		runRecommend(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().IntP("limit", "n", 0, "maximum number of recommendations (default from config, 5 if unset)")
	recommendCmd.Flags().StringP("profile", "p", "", "candidate profile file (json, yaml or toml)")
	recommendCmd.Flags().StringP("jobs", "J", "", "file with job postings under the 'jobs' key")
	recommendCmd.Flags().StringP("exclude-file", "e", "", "special file with jobs to exclude. Default is unset.")
	recommendCmd.Flags().Bool("include-applied", false, "do not exclude jobs the candidate already applied to")
	recommendCmd.Flags().BoolP("auto-approve", "y", false, "do not show the interactive menu after ranking")
	recommendCmd.Flags().StringP("output", "o", "", "write recommendations as JSON to the given file")

	viper.BindPFlag("limit", recommendCmd.Flags().Lookup("limit"))
	viper.BindPFlag("profile-file", recommendCmd.Flags().Lookup("profile"))
	viper.BindPFlag("jobs-file", recommendCmd.Flags().Lookup("jobs"))
	viper.BindPFlag("exclude-file", recommendCmd.Flags().Lookup("exclude-file"))
}

func runRecommend(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the job-recommender", zap.String("version", resolveVersion()))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	candidate, err := jobboard.LoadCandidate(config.ProfileFile)
	if err != nil {
		logger.Fatal("loading the candidate profile", zap.Error(err),
			zap.String("hint", "pass --profile, set JR_PROFILE_FILE or the 'profile-file' key in the configuration file"),
		)
	}

	jobs, err := jobboard.LoadJobs(config.JobsFile)
	if err != nil {
		logger.Fatal("loading jobs", zap.Error(err),
			zap.String("hint", "pass --jobs, set JR_JOBS_FILE or the 'jobs-file' key in the configuration file"),
		)
	}

	logger.Info("loaded jobs", zap.Int("count", jobs.Len()))

	includeApplied, _ := cmd.Flags().GetBool("include-applied")
	recommender := newRecommender(ctx, config, includeApplied, logger)

	resp, err := recommender.Recommend(ctx, service.Request{
		Profile:  &candidate.Profile,
		Identity: &candidate.Identity,
		Jobs:     jobs.Items,
		Limit:    config.Limit,
	})
	if err != nil {
		logger.Fatal("recommending jobs", zap.Error(err))
	}

	if len(resp.Recommendations) == 0 {
		logger.Info("exiting", zap.String("reason", resp.Message), zap.Int("jobs considered", resp.Total))
		return
	}

	printResults(logger, resp)

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := recommend.Write(output, resp.Recommendations); err != nil {
			logger.Fatal("writing recommendations", zap.Error(err))
		}
		logger.Info("recommendations written", zap.String("filename", output))
	}

	if autoApprove, _ := cmd.Flags().GetBool("auto-approve"); autoApprove {
		return
	}

	results := resp.Recommendations
	for len(results) > 0 {
		items := []string{PromptDone, PromptReportByCompanies, PromptResultsToFile}
		if config.ExcludeFile != "" {
			items = append(items, PromptAppendToExcludeFile)
		}

		menu := promptui.Select{
			Label: "What next?",
			Items: items,
		}

		_, action, err := menu.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		results, err = handleAction(action, logger, config, jobs, results)
		if err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, config *Config, jobs *jobboard.Jobs, results []recommend.Result) ([]recommend.Result, error) {
	switch action {
	case PromptDone:
		logger.Info("exiting", zap.String("reason", "done"))
		return results, errExit
	case PromptReportByCompanies:
		pretty, _ := json.MarshalIndent(recommend.ReportByCompany(results), "", "  ")
		logger.Info(string(pretty), zap.Int("recommendations count", len(results)))
		return results, nil
	case PromptResultsToFile:
		filename, err := recommend.DumpToTmpFile(results)
		if err != nil {
			return results, fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return results, nil
	case PromptAppendToExcludeFile:
		if err := appendToExcludeFile(config.ExcludeFile, jobs, results); err != nil {
			return results, err
		}
		logger.Info("appended to exclude file", zap.String("filename", config.ExcludeFile), zap.Int("count", len(results)))
		return nil, nil
	default:
		return results, fmt.Errorf("invalid action: %s", action)
	}
}

// appendToExcludeFile records the recommended jobs so the next run skips them.
// Jobs the AI review judged unfit are attributed to the AI with its reason.
func appendToExcludeFile(path string, jobs *jobboard.Jobs, results []recommend.Result) error {
	excluded, err := jobboard.GetExcludedJobsFromFile(path)
	if err != nil {
		return err
	}

	for _, r := range results {
		job := jobs.FindByID(r.JobID)
		if job == nil {
			continue
		}

		actor, reason := jobboard.ExcludeActorUser, excludeReasonRecommended
		if r.AI != nil && r.AI.Error == "" && !r.AI.Fit {
			actor, reason = jobboard.ExcludeActorAI, strings.TrimSpace(r.AI.Reason)
		}

		one := &jobboard.Jobs{Items: []*jobboard.Job{job}}
		excluded.Append(one.ToExcluded(actor, reason))
	}

	return excluded.ToFile(path)
}

func printResults(log *zap.Logger, resp *service.Response) {
	log.Info("recommendations",
		zap.Int("count", len(resp.Recommendations)),
		zap.Int("jobs considered", resp.Total),
	)

	for i, r := range resp.Recommendations {
		fields := []zap.Field{
			zap.Int("rank", i+1),
			zap.Int("score", r.MatchScore),
			zap.String("reason", r.Reason),
		}
		fields = append(fields, logger.StringFields(
			logger.StringField{Key: logger.FieldJobID, Value: r.JobID},
			logger.StringField{Key: logger.FieldJobTitle, Value: r.JobTitle},
			logger.StringField{Key: logger.FieldCompany, Value: r.Company},
			logger.StringField{Key: "location", Value: r.Location},
		)...)
		if r.AI != nil {
			fields = append(fields, zap.Bool("ai_fit", r.AI.Fit), zap.Float64("ai_score", r.AI.Score))
			if r.AI.Error != "" {
				fields = append(fields, zap.String("ai_error", r.AI.Error))
			}
		}
		log.Info("recommendation", fields...)
	}
}
