package humps

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/batch"
	batchTypes "github.com/aws/aws-sdk-go-v2/service/batch/types"
)

type fakeBatch struct {
	defs  []batchTypes.JobDefinition
	err   error
	input *batch.DescribeJobDefinitionsInput
}

func (f *fakeBatch) DescribeJobDefinitions(ctx context.Context, params *batch.DescribeJobDefinitionsInput, optFns ...func(*batch.Options)) (*batch.DescribeJobDefinitionsOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &batch.DescribeJobDefinitionsOutput{JobDefinitions: f.defs}, nil
}

func testJobDefinitions() []batchTypes.JobDefinition {
	return []batchTypes.JobDefinition{
		{
			JobDefinitionName: aws.String("my-job"),
			JobDefinitionArn:  aws.String("arn:aws:batch:ap-northeast-1:123456789012:job-definition/my-job:1"),
			Revision:          aws.Int32(1),
			Status:            aws.String("ACTIVE"),
			Type:              aws.String("container"),
			ContainerProperties: &batchTypes.ContainerProperties{
				Image: aws.String("nginx:1"),
			},
		},
		{
			JobDefinitionName: aws.String("my-job"),
			JobDefinitionArn:  aws.String("arn:aws:batch:ap-northeast-1:123456789012:job-definition/my-job:3"),
			Revision:          aws.Int32(3),
			Status:            aws.String("ACTIVE"),
			Type:              aws.String("container"),
			Parameters:        map[string]string{"inputFile": "s3://bucket/key"},
			Tags:              map[string]string{"CostCenter": "platform"},
			ContainerProperties: &batchTypes.ContainerProperties{
				Image:   aws.String("nginx:3"),
				Command: []string{"echo", "hello"},
				ResourceRequirements: []batchTypes.ResourceRequirement{
					{Type: batchTypes.ResourceTypeVcpu, Value: aws.String("1")},
				},
			},
		},
	}
}

func newExportApp(t *testing.T, fake *fakeBatch) (*App, *strings.Builder, *string) {
	t.Helper()
	app, _ := newTestApp(t, "", "")
	var out strings.Builder
	app.stdout = &out
	var region string
	app.newBatchClient = func(ctx context.Context, r string) (batchAPI, error) {
		region = r
		return fake, nil
	}
	return app, &out, &region
}

func TestPickLatestRevision(t *testing.T) {
	defs := testJobDefinitions()
	defs[0], defs[1] = defs[1], defs[0]
	if got := aws.ToInt32(pickLatestRevision(defs).Revision); got != 3 {
		t.Errorf("Revision = %d, want 3", got)
	}
}

func TestNormalizeRemoteDefinition(t *testing.T) {
	m, err := normalizeRemoteDefinition(testJobDefinitions()[1])
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range exportExcludeKeys {
		if _, ok := m[key]; ok {
			t.Errorf("%s should be excluded", key)
		}
	}
	if _, ok := m["Timeout"]; ok {
		t.Error("null fields should be pruned")
	}
	if m["JobDefinitionName"] != "my-job" {
		t.Errorf("JobDefinitionName = %v", m["JobDefinitionName"])
	}
}

func TestExport(t *testing.T) {
	t.Setenv("AWS_REGION", "us-west-2")
	fake := &fakeBatch{defs: testJobDefinitions()}
	app, out, region := newExportApp(t, fake)

	if err := app.Export(context.Background(), ExportOption{JobDefinitionName: "my-job", To: "snake"}); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if *region != "us-west-2" {
		t.Errorf("region = %q, want %q", *region, "us-west-2")
	}
	if aws.ToString(fake.input.JobDefinitionName) != "my-job" || aws.ToString(fake.input.Status) != "ACTIVE" {
		t.Errorf("unexpected input: name=%q status=%q", aws.ToString(fake.input.JobDefinitionName), aws.ToString(fake.input.Status))
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(out.String()), &m); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if m["job_definition_name"] != "my-job" {
		t.Errorf("job_definition_name = %v", m["job_definition_name"])
	}
	for _, key := range []string{"revision", "status", "job_definition_arn", "timeout"} {
		if _, ok := m[key]; ok {
			t.Errorf("%s should not be exported", key)
		}
	}
	cp := m["container_properties"].(map[string]any)
	if cp["image"] != "nginx:3" {
		t.Errorf("image = %v, want %q", cp["image"], "nginx:3")
	}
	rr := cp["resource_requirements"].([]any)[0].(map[string]any)
	if rr["type"] != "VCPU" || rr["value"] != "1" {
		t.Errorf("resource_requirements[0] = %v", rr)
	}
	if tags := m["tags"].(map[string]any); tags["CostCenter"] != "platform" {
		t.Errorf("tags should keep their keys, got %v", tags)
	}
	if params := m["parameters"].(map[string]any); params["inputFile"] != "s3://bucket/key" {
		t.Errorf("parameters should keep their keys, got %v", params)
	}
}

func TestExport_DefaultsToCamel(t *testing.T) {
	fake := &fakeBatch{defs: testJobDefinitions()}
	app, out, region := newExportApp(t, fake)

	path := filepath.Join(t.TempDir(), "jobdef.json")
	opt := ExportOption{JobDefinitionName: "my-job", Region: "eu-west-1", Output: path}
	if err := app.Export(context.Background(), opt); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if *region != "eu-west-1" {
		t.Errorf("region = %q, want %q", *region, "eu-west-1")
	}
	if out.String() != "Created "+path+"\n" {
		t.Errorf("output = %q", out.String())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if m["jobDefinitionName"] != "my-job" {
		t.Errorf("jobDefinitionName = %v", m["jobDefinitionName"])
	}
	if _, ok := m["containerProperties"]; !ok {
		t.Errorf("containerProperties missing: %v", m)
	}
}

func TestExport_Errors(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		app, _, _ := newExportApp(t, &fakeBatch{})
		err := app.Export(context.Background(), ExportOption{})
		var cerr CommandError
		if !errors.As(err, &cerr) || cerr.ExitStatus() != 2 {
			t.Errorf("expected usage error, got %v", err)
		}
	})
	t.Run("not found", func(t *testing.T) {
		app, _, _ := newExportApp(t, &fakeBatch{})
		err := app.Export(context.Background(), ExportOption{JobDefinitionName: "none"})
		if err == nil || !strings.Contains(err.Error(), "no active job definition") {
			t.Errorf("unexpected error: %v", err)
		}
	})
	t.Run("api error", func(t *testing.T) {
		apiErr := errors.New("access denied")
		app, _, _ := newExportApp(t, &fakeBatch{err: apiErr})
		err := app.Export(context.Background(), ExportOption{JobDefinitionName: "my-job"})
		if !errors.Is(err, apiErr) {
			t.Errorf("expected wrapped API error, got %v", err)
		}
	})
}
