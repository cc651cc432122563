package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"sistema_mdu/internal/domain/entities"
	"sistema_mdu/internal/usecase/interfaces"
	"sistema_mdu/pkg"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// csvFixedColumns lead every CSV export; attribute columns follow sorted by
// name.
var csvFixedColumns = []string{
	entities.FieldID,
	entities.FieldCidade,
	entities.FieldProjeto,
	entities.FieldStatus,
	entities.FieldCreatedAt,
	entities.FieldUpdatedAt,
}

//go:generate mockgen -source=import_export_usecase.go -destination=../adapter/http/handlers/mocks/mock_import_export_usecase.go -package=mocks

// IImportExportUseCase moves address records in and out in bulk.
type IImportExportUseCase interface {
	ImportBatch(ctx context.Context, records []entities.Document) pkg.Result[int]
	ImportReport(ctx context.Context, records []entities.Document) pkg.Result[entities.ImportReport]
	Export(ctx context.Context, format entities.FileFormat) pkg.Result[entities.ExportFile]
}

type ImportExportUseCase struct {
	service
	addresses IAddressUseCase
	storage   interfaces.IObjectStorage
	now       func() time.Time
}

var _ IImportExportUseCase = (*ImportExportUseCase)(nil)

// NewImportExportUseCase builds the service. storage may be nil, in which
// case exports are returned without being uploaded.
func NewImportExportUseCase(addresses IAddressUseCase, storage interfaces.IObjectStorage, opts ...Option) *ImportExportUseCase {
	return &ImportExportUseCase{
		service:   newService("importExport", opts),
		addresses: addresses,
		storage:   storage,
		now:       time.Now,
	}
}

// ImportBatch adds the records one at a time through AddressUseCase.Add. A
// failed record is logged and skipped; the result is the number of records
// added.
func (u *ImportExportUseCase) ImportBatch(ctx context.Context, records []entities.Document) pkg.Result[int] {
	return guard(u.service, "importBatch", func() pkg.Result[int] {
		report := u.importRecords(ctx, records)
		return pkg.OKAs(pkg.KeyImported, report.Imported)
	})
}

// ImportReport behaves like ImportBatch but also returns the generated ids
// and the reason each failed record was skipped.
func (u *ImportExportUseCase) ImportReport(ctx context.Context, records []entities.Document) pkg.Result[entities.ImportReport] {
	return guard(u.service, "importReport", func() pkg.Result[entities.ImportReport] {
		return pkg.OK(u.importRecords(ctx, records))
	})
}

func (u *ImportExportUseCase) importRecords(ctx context.Context, records []entities.Document) entities.ImportReport {
	report := entities.ImportReport{IDs: []string{}, Failures: []entities.ImportFailure{}}
	for i, record := range records {
		res := u.addresses.Add(ctx, record)
		if !res.Success {
			u.log.Warn("record not imported", zap.Int("index", i), zap.String("error", res.Error))
			report.Failures = append(report.Failures, entities.ImportFailure{Index: i, Error: res.Error})
			continue
		}
		report.IDs = append(report.IDs, res.Data)
	}
	report.Imported = len(report.IDs)
	return report
}

// Export serialises every address, newest first, and uploads the file under
// exports/ when object storage is configured.
func (u *ImportExportUseCase) Export(ctx context.Context, format entities.FileFormat) pkg.Result[entities.ExportFile] {
	return guard(u.service, "export", func() pkg.Result[entities.ExportFile] {
		all := u.addresses.GetAll(ctx)
		if !all.Success {
			return pkg.Forward[entities.ExportFile](all)
		}

		content, err := EncodeAddresses(format, all.Data)
		if err != nil {
			return pkg.Fail[entities.ExportFile](err)
		}
		file := entities.ExportFile{
			Format:      format,
			Filename:    fmt.Sprintf("enderecos-%s.%s", u.now().UTC().Format("20060102T150405Z"), format),
			ContentType: format.ContentType(),
			Count:       len(all.Data),
			Content:     content,
		}
		if u.storage != nil {
			loc, err := u.storage.Put(ctx, "exports/"+file.Filename, file.ContentType, bytes.NewReader(content))
			if err != nil {
				return pkg.Fail[entities.ExportFile](err)
			}
			file.Location = loc
		}
		return pkg.OK(file)
	})
}

// EncodeAddresses renders addresses in the given format.
func EncodeAddresses(format entities.FileFormat, addresses []entities.Address) ([]byte, error) {
	switch format {
	case entities.FormatJSON:
		return json.MarshalIndent(addresses, "", "  ")
	case entities.FormatYAML:
		rows := make([]map[string]any, len(addresses))
		for i, a := range addresses {
			rows[i] = a.Fields()
		}
		return yaml.Marshal(rows)
	case entities.FormatCSV:
		return encodeCSV(addresses)
	}
	return nil, &pkg.ValidationError{Field: "format", Reason: fmt.Sprintf("unsupported format %q", format)}
}

func encodeCSV(addresses []entities.Address) ([]byte, error) {
	attrs := map[string]struct{}{}
	for _, a := range addresses {
		for k := range a.Attributes {
			attrs[k] = struct{}{}
		}
	}
	for _, k := range csvFixedColumns {
		delete(attrs, k)
	}
	extra := make([]string, 0, len(attrs))
	for k := range attrs {
		extra = append(extra, k)
	}
	sort.Strings(extra)
	header := append(append([]string(nil), csvFixedColumns...), extra...)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, a := range addresses {
		fields := a.Fields()
		row := make([]string, len(header))
		for i, col := range header {
			row[i] = csvCell(fields[col])
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func csvCell(v any) string {
	switch tv := v.(type) {
	case nil:
		return ""
	case string:
		return tv
	case time.Time:
		return entities.FormatTimestamp(tv)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(raw)
}

// DecodeRecords reads import records: a JSON or YAML array of objects, or a
// CSV file whose first row names the fields. Empty CSV cells are omitted.
func DecodeRecords(format entities.FileFormat, r io.Reader) ([]entities.Document, error) {
	var (
		records []entities.Document
		err     error
	)
	switch format {
	case entities.FormatJSON:
		err = json.NewDecoder(r).Decode(&records)
	case entities.FormatYAML:
		err = yaml.NewDecoder(r).Decode(&records)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case entities.FormatCSV:
		records, err = decodeCSV(r)
	default:
		return nil, &pkg.ValidationError{Field: "format", Reason: fmt.Sprintf("unsupported format %q", format)}
	}
	if err != nil {
		return nil, &pkg.ValidationError{Field: "records", Reason: fmt.Sprintf("decode %s: %v", format, err)}
	}
	if records == nil {
		records = []entities.Document{}
	}
	return records, nil
}

func decodeCSV(r io.Reader) ([]entities.Document, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var out []entities.Document
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		doc := entities.Document{}
		for i, cell := range row {
			if i >= len(header) || header[i] == "" || cell == "" {
				continue
			}
			doc[header[i]] = cell
		}
		if len(doc) > 0 {
			out = append(out, doc)
		}
	}
}
