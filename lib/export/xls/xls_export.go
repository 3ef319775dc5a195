package xlsexport

import (
	"bytes"
	"strings"
	apimodels "worktrack-backend/models/api"
	dbmodels "worktrack-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportJobList(list []dbmodels.Job) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var jobHeaders = []string{"Номер", "Название", "Отдел", "Исполнитель", "Статус", "Приоритет", "Срок", "Прогресс, %", "Теги", "Дата создания"}

func (i impl) ExportJobList(list []dbmodels.Job) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, jobHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeJobData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Задачи")
	return f.WriteToBuffer()
}

func writeJobData(f *excelize.File, sheet string, list []dbmodels.Job, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(jobHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Номер"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Number); err != nil {
			return row, err
		}

		// "Название"
		col++
		if err := writeColumn(f, sheet, col, row, item.Title); err != nil {
			return row, err
		}

		// "Отдел"
		col++
		if err := writeColumn(f, sheet, col, row, item.Department); err != nil {
			return row, err
		}

		// "Исполнитель"
		col++
		if item.Assignee != nil {
			if err := writeColumn(f, sheet, col, row, item.Assignee.Name); err != nil {
				return row, err
			}
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Приоритет"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Priority)); err != nil {
			return row, err
		}

		// "Срок"
		col++
		if item.DueDate != nil {
			if err := writeColumn(f, sheet, col, row, item.DueDate.Format(apimodels.DateFormat)); err != nil {
				return row, err
			}
		}

		// "Прогресс, %"
		col++
		if err := writeColumn(f, sheet, col, row, item.Progress); err != nil {
			return row, err
		}

		// "Теги"
		col++
		if len(item.Tags) != 0 {
			if err := writeColumn(f, sheet, col, row, strings.Join(item.Tags, ", ")); err != nil {
				return row, err
			}
		}

		// "Дата создания"
		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format(apimodels.DateFormat)); err != nil {
			return row, err
		}
	}
	return row, nil
}
