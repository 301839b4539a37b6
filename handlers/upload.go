package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/services"
	"supplydesk/templates"
)

// maxUploadBytes caps supplier list uploads.
const maxUploadBytes = 10 << 20

// UploadPage renders the supplier list upload screen with the history table.
func UploadPage(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.UploadData{Logs: uploadLogs(app)}
		header := GetHeaderData(e.Request)
		return render(e,
			templates.UploadPage(data, header),
			templates.UploadContent(data),
		)
	}
}

// UploadSubmit pre-validates the uploaded file locally and forwards it to the
// backend import endpoint when clean. Broken files never leave the building;
// the row errors render inline and the attempt is logged as rejected.
func UploadSubmit(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		file, fileHeader, err := e.Request.FormFile("supplier_list")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Choose a .csv or .xlsx file to upload.")
		}
		defer file.Close()

		content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Could not read the uploaded file.")
		}
		if len(content) > maxUploadBytes {
			return ErrorToast(e, http.StatusRequestEntityTooLarge, "File is too large (10 MB max).")
		}
		filename := fileHeader.Filename

		check, err := services.CheckSupplierList(filename, bytes.NewReader(content))
		if err != nil {
			logUpload(app, filename, "failed", 0, 0, err.Error())
			return renderUploadResult(app, e, nil, "error", err.Error())
		}
		if !check.OK() {
			logUpload(app, filename, "rejected", check.TotalRows, check.ValidRows,
				fmt.Sprintf("%d of %d rows invalid", check.ErrorRows, check.TotalRows))
			rowErrors := make([]templates.UploadRowErrorView, 0, len(check.Errors))
			for _, re := range check.Errors {
				rowErrors = append(rowErrors, templates.UploadRowErrorView{
					Row: re.Row, Field: re.Field, Message: re.Message,
				})
			}
			return renderUploadResult(app, e, rowErrors, "error",
				fmt.Sprintf("%d rows failed validation. Fix the file and upload again.", check.ErrorRows))
		}

		result, err := client.UploadSupplierList(e.Request.Context(), filename, bytes.NewReader(content))
		if err != nil {
			if backend.IsUnauthorized(err) {
				DropSession(app, e)
				return redirectToLogin(e)
			}
			log.Printf("upload: backend rejected %s: %v", filename, err)
			logUpload(app, filename, "failed", check.TotalRows, check.ValidRows, backend.UserMessage(err))
			return renderUploadResult(app, e, nil, "error", backend.UserMessage(err))
		}

		detail := result.Message
		if detail == "" {
			detail = fmt.Sprintf("%d imported, %d skipped", result.Imported, result.Skipped)
		}
		logUpload(app, filename, "forwarded", check.TotalRows, check.ValidRows, detail)
		return renderUploadResult(app, e, nil, "success", "Supplier list uploaded. "+detail)
	}
}

// UploadTemplate streams a blank supplier list workbook with the expected
// columns.
func UploadTemplate() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		content, err := services.GenerateSupplierListTemplate()
		if err != nil {
			log.Printf("upload: failed to generate template: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not generate the template.")
		}
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", `attachment; filename="supplier_list_template.xlsx"`)
		_, err = e.Response.Write(content)
		return err
	}
}

func renderUploadResult(app *pocketbase.PocketBase, e *core.RequestEvent, rowErrors []templates.UploadRowErrorView, toastKind, message string) error {
	SetToast(e, toastKind, message)
	data := templates.UploadData{
		Logs:      uploadLogs(app),
		RowErrors: rowErrors,
	}
	header := GetHeaderData(e.Request)
	return render(e,
		templates.UploadPage(data, header),
		templates.UploadContent(data),
	)
}

func uploadLogs(app *pocketbase.PocketBase) []templates.UploadLogRow {
	recs, err := app.FindRecordsByFilter("upload_logs", "", "-created", 20, 0)
	if err != nil {
		log.Printf("upload: failed to load history: %v", err)
		return nil
	}
	rows := make([]templates.UploadLogRow, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, templates.UploadLogRow{
			Filename:  rec.GetString("filename"),
			TotalRows: rec.GetInt("total_rows"),
			ValidRows: rec.GetInt("valid_rows"),
			Status:    rec.GetString("status"),
			Detail:    rec.GetString("detail"),
			Created:   rec.GetDateTime("created").Time().Format("02 Jan 2006 15:04"),
		})
	}
	return rows
}

func logUpload(app *pocketbase.PocketBase, filename, status string, totalRows, validRows int, detail string) {
	col, err := app.FindCollectionByNameOrId("upload_logs")
	if err != nil {
		log.Printf("upload: upload_logs collection missing: %v", err)
		return
	}
	rec := core.NewRecord(col)
	rec.Set("filename", filename)
	rec.Set("status", status)
	rec.Set("total_rows", totalRows)
	rec.Set("valid_rows", validRows)
	rec.Set("detail", detail)
	if err := app.Save(rec); err != nil {
		log.Printf("upload: failed to log upload of %s: %v", filename, err)
	}
}
