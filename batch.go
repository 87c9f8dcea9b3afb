package humps

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/batch"
	batchTypes "github.com/aws/aws-sdk-go-v2/service/batch/types"
)

// batchAPI is the part of the AWS Batch client used by batch-export.
type batchAPI interface {
	DescribeJobDefinitions(ctx context.Context, params *batch.DescribeJobDefinitionsInput, optFns ...func(*batch.Options)) (*batch.DescribeJobDefinitionsOutput, error)
}

func newBatchClient(ctx context.Context, region string) (batchAPI, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return batch.NewFromConfig(awsCfg), nil
}

// exportExcludeKeys are fields returned by DescribeJobDefinitions that are
// AWS-managed and should not be included in an exported payload.
var exportExcludeKeys = []string{
	"JobDefinitionArn",
	"Revision",
	"Status",
	"ContainerOrchestrationType",
}

// exportPreserveKeys hold user-defined names whose keys must not be recased.
var exportPreserveKeys = []string{
	"Options",
	"Parameters",
	"Tags",
}

// ExportOption holds options for the batch-export command.
type ExportOption struct {
	JobDefinitionName string
	Region            string
	To                string
	Output            string
}

// Export fetches the latest active job definition and prints it with its
// keys converted to the target style (camel unless configured otherwise).
func (app *App) Export(ctx context.Context, opt ExportOption) error {
	if opt.JobDefinitionName == "" {
		return usageError("pass --job-definition-name", "job definition name is required")
	}
	to := opt.To
	if to == "" && app.config.To == "" {
		to = string(StyleCamel)
	}
	conv, err := app.converter(to)
	if err != nil {
		return err
	}
	region := opt.Region
	if region == "" {
		region = app.config.Region
	}

	client, err := app.newBatchClient(ctx, region)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}
	defs, err := describeActive(ctx, client, opt.JobDefinitionName)
	if err != nil {
		return err
	}
	if len(defs) == 0 {
		return fmt.Errorf("no active job definition found for %q", opt.JobDefinitionName)
	}
	latest := pickLatestRevision(defs)
	app.logVerbose("exporting %s revision %d", opt.JobDefinitionName, aws.ToInt32(latest.Revision))

	raw, err := normalizeRemoteDefinition(latest)
	if err != nil {
		return err
	}
	opts := app.config.options()
	if len(opts.Preserve) == 0 {
		opts.Preserve = exportPreserveKeys
	}
	converted := ProcessKeys(conv, raw, opts)

	formatted, err := json.MarshalIndent(converted, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format job definition: %w", err)
	}
	return app.writeOutput(opt.Output, append(formatted, '\n'))
}

func describeActive(ctx context.Context, client batchAPI, name string) ([]batchTypes.JobDefinition, error) {
	p := batch.NewDescribeJobDefinitionsPaginator(client, &batch.DescribeJobDefinitionsInput{
		JobDefinitionName: aws.String(name),
		Status:            aws.String("ACTIVE"),
	})
	var defs []batchTypes.JobDefinition
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe job definitions: %w", err)
		}
		defs = append(defs, out.JobDefinitions...)
	}
	return defs, nil
}

// pickLatestRevision returns the job definition with the highest revision.
func pickLatestRevision(defs []batchTypes.JobDefinition) batchTypes.JobDefinition {
	latest := defs[0]
	for _, d := range defs[1:] {
		if aws.ToInt32(d.Revision) > aws.ToInt32(latest.Revision) {
			latest = d
		}
	}
	return latest
}

// normalizeRemoteDefinition converts an AWS job definition to a plain map,
// stripping AWS-managed fields and null values.
func normalizeRemoteDefinition(def batchTypes.JobDefinition) (map[string]any, error) {
	b, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal remote definition: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal remote definition: %w", err)
	}
	for _, key := range exportExcludeKeys {
		delete(m, key)
	}
	return pruneNulls(m).(map[string]any), nil
}

func pruneNulls(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			if child == nil {
				delete(val, k)
				continue
			}
			val[k] = pruneNulls(child)
		}
		return val
	case []any:
		for i, child := range val {
			val[i] = pruneNulls(child)
		}
		return val
	default:
		return v
	}
}
