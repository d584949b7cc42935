package gantt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"gopkg.in/yaml.v3"
)

const (
	DefaultJobsSource      = "jobs.json"
	DefaultResourcesSource = "resources.json"

	_DocumentJobs      = "jobs"
	_DocumentResources = "resources"
)

type DocumentFormat string

const (
	FormatJSON DocumentFormat = "json"
	FormatYAML DocumentFormat = "yaml"
)

// FormatFromPath defaults to JSON for unknown extensions.
func FormatFromPath(path string) DocumentFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}

	return FormatJSON
}

// flexInt accepts an integer or a string holding one,
// solvers export identifiers in both shapes.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var number int

	if errNumber := json.Unmarshal(data, &number); errNumber == nil {
		*f = flexInt(number)

		return nil
	}

	var text string

	if errText := json.Unmarshal(data, &text); errText != nil {
		return fmt.Errorf("expected integer or integer string, got %s", string(data))
	}

	number, errConv := strconv.Atoi(strings.TrimSpace(text))
	if errConv != nil {
		return fmt.Errorf("expected integer string, got %q", text)
	}

	*f = flexInt(number)

	return nil
}

type record map[string]json.RawMessage

func readRecords(r io.Reader, format DocumentFormat, document string) ([]record, error) {
	content, errRead := io.ReadAll(r)
	if errRead != nil {
		return nil,
			ErrIOUnavailable{
				Source: document,
				Issue:  errRead,
			}
	}

	if format == FormatYAML {
		var generic map[string]any

		if errUnmarshal := yaml.Unmarshal(content, &generic); errUnmarshal != nil {
			return nil,
				ErrMalformedData{
					Document: document,
					Index:    -1,
					Field:    document,
					Issue:    errUnmarshal,
				}
		}

		asJSON, errMarshal := json.Marshal(generic)
		if errMarshal != nil {
			return nil,
				ErrMalformedData{
					Document: document,
					Index:    -1,
					Field:    document,
					Issue:    errMarshal,
				}
		}

		content = asJSON
	}

	var top map[string]json.RawMessage

	if errUnmarshal := json.Unmarshal(content, &top); errUnmarshal != nil {
		return nil,
			ErrMalformedData{
				Document: document,
				Index:    -1,
				Field:    document,
				Issue:    errUnmarshal,
			}
	}

	raw, exists := top[document]
	if !exists || bytes.Equal(raw, []byte("null")) {
		return nil,
			ErrMalformedData{
				Document: document,
				Index:    -1,
				Field:    document,
				Issue: goerrors.ErrNilInput{
					InputName: document,
				},
			}
	}

	var result []record

	if errUnmarshal := json.Unmarshal(raw, &result); errUnmarshal != nil {
		return nil,
			ErrMalformedData{
				Document: document,
				Index:    -1,
				Field:    document,
				Issue:    errUnmarshal,
			}
	}

	return result, nil
}

func (rec record) decodeField(document string, index int, field string, target any) error {
	raw, exists := rec[field]
	if !exists || bytes.Equal(raw, []byte("null")) {
		return ErrMalformedData{
			Document: document,
			Index:    index,
			Field:    field,
			Issue: goerrors.ErrNilInput{
				InputName: field,
			},
		}
	}

	if errUnmarshal := json.Unmarshal(raw, target); errUnmarshal != nil {
		return ErrMalformedData{
			Document: document,
			Index:    index,
			Field:    field,
			Issue: goerrors.ErrInvalidInput{
				Caller:     "decodeField",
				InputName:  field,
				InputValue: string(raw),
				Issue:      errUnmarshal,
			},
		}
	}

	return nil
}

func decodeJob(rec record, index int, lenient bool) (*JobAllocation, error) {
	var (
		jobID, modeID       flexInt
		startTime, duration float64
		unitsMap            [][]int
		resourceIDs         []int
	)

	fields := []struct {
		name   string
		target any
	}{
		{"job_id", &jobID},
		{"start_time", &startTime},
		{"duration", &duration},
		{"mode_id", &modeID},
		{"units_map", &unitsMap},
		{"resource_ids", &resourceIDs},
	}

	for _, field := range fields {
		if errField := rec.decodeField(_DocumentJobs, index, field.name, field.target); errField != nil {
			return nil, errField
		}
	}

	if !lenient && len(unitsMap) != len(resourceIDs) {
		return nil,
			ErrLayoutValidation{
				JobID: int(jobID),
				Field: "units_map",
				Issue: goerrors.ErrInvalidInput{
					Caller:     "decodeJob",
					InputName:  "units_map",
					InputValue: len(unitsMap),
					Issue: fmt.Errorf(
						"length differs from resource_ids length %d",
						len(resourceIDs),
					),
				},
			}
	}

	job, errCr := NewJobAllocation(
		&ParamsNewJobAllocation{
			JobID:     int(jobID),
			StartTime: startTime,
			Duration:  duration,
			ModeID:    int(modeID),

			UnitsMap:    unitsMap,
			ResourceIDs: resourceIDs,

			Lenient: lenient,
		},
	)
	if errCr != nil {
		return nil,
			ErrMalformedData{
				Document: _DocumentJobs,
				Index:    index,
				Field:    "record",
				Issue:    errCr,
			}
	}

	return job, nil
}

func decodeResource(rec record, index int) (*Resource, error) {
	var (
		id    flexInt
		units int
	)

	if errField := rec.decodeField(_DocumentResources, index, "id", &id); errField != nil {
		return nil, errField
	}

	if errField := rec.decodeField(_DocumentResources, index, "units", &units); errField != nil {
		return nil, errField
	}

	res, errCr := NewResource(
		&ParamsNewResource{
			ID:    int(id),
			Units: units,
		},
	)
	if errCr != nil {
		return nil,
			ErrMalformedData{
				Document: _DocumentResources,
				Index:    index,
				Field:    "units",
				Issue:    errCr,
			}
	}

	return res, nil
}

// DecodeJobs reads a jobs document preserving record order.
func DecodeJobs(r io.Reader, format DocumentFormat) ([]JobAllocation, error) {
	return decodeJobs(r, format, false)
}

func decodeJobs(r io.Reader, format DocumentFormat, lenient bool) ([]JobAllocation, error) {
	records, errRead := readRecords(r, format, _DocumentJobs)
	if errRead != nil {
		return nil, errRead
	}

	result := make([]JobAllocation, 0, len(records))

	for ix, rec := range records {
		job, errDecode := decodeJob(rec, ix, lenient)
		if errDecode != nil {
			return nil, errDecode
		}

		result = append(result, *job)
	}

	return result, nil
}

// DecodeResources reads a resources document, the order of the records
// defines the panel indexes.
func DecodeResources(r io.Reader, format DocumentFormat) ([]Resource, error) {
	records, errRead := readRecords(r, format, _DocumentResources)
	if errRead != nil {
		return nil, errRead
	}

	result := make([]Resource, 0, len(records))

	for ix, rec := range records {
		res, errDecode := decodeResource(rec, ix)
		if errDecode != nil {
			return nil, errDecode
		}

		result = append(result, *res)
	}

	return result, nil
}

func openSource(path string) (*os.File, error) {
	f, errOpen := os.Open(path)
	if errOpen != nil {
		return nil,
			ErrIOUnavailable{
				Source: path,
				Issue:  errOpen,
			}
	}

	return f, nil
}

func relabelSource(err error, path string) error {
	var errIO ErrIOUnavailable

	if errors.As(err, &errIO) {
		errIO.Source = path

		return errIO
	}

	return err
}

func LoadJobs(path string) ([]JobAllocation, error) {
	return loadJobs(path, false)
}

func loadJobs(path string, lenient bool) ([]JobAllocation, error) {
	f, errOpen := openSource(path)
	if errOpen != nil {
		return nil, errOpen
	}
	defer f.Close()

	jobs, errDecode := decodeJobs(f, FormatFromPath(path), lenient)
	if errDecode != nil {
		return nil,
			relabelSource(errDecode, path)
	}

	return jobs, nil
}

func LoadResources(path string) ([]Resource, error) {
	f, errOpen := openSource(path)
	if errOpen != nil {
		return nil, errOpen
	}
	defer f.Close()

	resources, errDecode := DecodeResources(f, FormatFromPath(path))
	if errDecode != nil {
		return nil,
			relabelSource(errDecode, path)
	}

	return resources, nil
}

type Schedule struct {
	Jobs      []JobAllocation
	Resources []Resource
}

type ParamsLoadSchedule struct {
	JobsSource      string `valid:"required"`
	ResourcesSource string `valid:"required"`

	// Lenient defers range and length checks to layout time.
	Lenient bool
}

func LoadSchedule(params *ParamsLoadSchedule) (*Schedule, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Loader",
				Caller:      "LoadSchedule",
				Issue:       errValidation,
			}
	}

	jobs, errJobs := loadJobs(params.JobsSource, params.Lenient)
	if errJobs != nil {
		return nil, errJobs
	}

	resources, errResources := LoadResources(params.ResourcesSource)
	if errResources != nil {
		return nil, errResources
	}

	if !params.Lenient {
		if errValidate := ValidateSchedule(jobs, resources); errValidate != nil {
			return nil, errValidate
		}
	}

	return &Schedule{
			Jobs:      jobs,
			Resources: resources,
		},
		nil
}

type jobRecord struct {
	JobID       int     `json:"job_id"`
	StartTime   float64 `json:"start_time"`
	Duration    float64 `json:"duration"`
	ModeID      int     `json:"mode_id"`
	UnitsMap    [][]int `json:"units_map"`
	ResourceIDs []int   `json:"resource_ids"`
}

type resourceRecord struct {
	ID    int `json:"id"`
	Units int `json:"units"`
}

func writeDocument(w io.Writer, document any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")

	return encoder.Encode(document)
}

// WriteJobs emits the jobs document in the layout DecodeJobs reads.
func WriteJobs(w io.Writer, jobs []JobAllocation) error {
	records := make([]jobRecord, len(jobs))

	for ix, job := range jobs {
		records[ix] = jobRecord{
			JobID:       job.JobID,
			StartTime:   job.StartTime,
			Duration:    job.Duration,
			ModeID:      job.ModeID,
			UnitsMap:    ternary(job.UnitsMap == nil, [][]int{}, job.UnitsMap),
			ResourceIDs: ternary(job.ResourceIDs == nil, []int{}, job.ResourceIDs),
		}
	}

	return writeDocument(
		w,
		map[string][]jobRecord{
			_DocumentJobs: records,
		},
	)
}

func WriteResources(w io.Writer, resources []Resource) error {
	records := make([]resourceRecord, len(resources))

	for ix, res := range resources {
		records[ix] = resourceRecord{
			ID:    res.ID,
			Units: res.Units,
		}
	}

	return writeDocument(
		w,
		map[string][]resourceRecord{
			_DocumentResources: records,
		},
	)
}
