// internal/workers/csv_processor_test.go
package workers_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lilithmonodia/winestock-be/internal/core/domain"
	"github.com/lilithmonodia/winestock-be/internal/core/ports"
	"github.com/lilithmonodia/winestock-be/internal/workers"
	"github.com/lilithmonodia/winestock-be/test/helpers"
	"github.com/lilithmonodia/winestock-be/test/mocks"
)

const sampleCSV = `name;year;volume;color;price;comment
Chateau Margaux;2015;75;ROUGE;450.00;premier cru
Chablis;2019;75;BLANC;32,50;
Dom Perignon;2012;150;CHAMPAGNE;210.00;magnum
`

const brokenCSV = `name;year;volume;color;price;comment
Chateau Margaux;2015;75;ROUGE;450.00;ok
No Year;abc;75;ROUGE;10.00;bad year
Odd Volume;2015;80;ROUGE;10.00;unknown size
Short;2015;75
`

func setupCSVProcessor(t *testing.T) (*workers.CSVProcessor, *mocks.MockWineService, *mocks.MockDatabase) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockWineService(ctrl)
	db := mocks.NewMockDatabase(ctrl)
	processor := workers.NewCSVProcessor(service, db, nil, helpers.TestLogger())

	return processor, service, db
}

func newCSVTask(t *testing.T, payload workers.CSVJobPayload) *asynq.Task {
	t.Helper()

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(workers.TypeCSVImport, b)
}

func TestCSVProcessor_ProcessCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("imports_every_valid_row", func(t *testing.T) {
		processor, service, db := setupCSVProcessor(t)

		path := helpers.CreateTempFile(t, []byte(sampleCSV), ".csv")

		var created []string
		service.EXPECT().
			CreateWine(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params ports.CreateWineParams) (*domain.Wine, error) {
				created = append(created, params.Name)
				wine, err := domain.NewWine(params.Name, params.Year, params.Volume, params.Color, params.Price)
				require.NoError(t, err)
				return wine, nil
			}).
			Times(3)
		db.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag{}, nil).
			Times(2)

		err := processor.ProcessCSV(ctx, newCSVTask(t, workers.CSVJobPayload{
			JobID:    "job-1",
			FilePath: path,
			Filename: "cellar.csv",
		}))

		require.NoError(t, err)
		assert.Equal(t, []string{"Chateau Margaux", "Chablis", "Dom Perignon"}, created)
	})

	t.Run("comma_decimals_are_tolerated", func(t *testing.T) {
		processor, service, db := setupCSVProcessor(t)

		path := helpers.CreateTempFile(t, []byte("name;year;volume;color;price;comment\nChablis;2019;37,5;BLANC;32,50;\n"), ".csv")

		service.EXPECT().
			CreateWine(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params ports.CreateWineParams) (*domain.Wine, error) {
				assert.Equal(t, 37.5, params.Volume)
				assert.Equal(t, "32.5", params.Price.String())
				return helpers.CreateTestWine(t), nil
			})
		db.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag{}, nil).
			Times(2)

		err := processor.ProcessCSV(ctx, newCSVTask(t, workers.CSVJobPayload{
			JobID:    "job-2",
			FilePath: path,
			Filename: "cellar.csv",
		}))

		require.NoError(t, err)
	})

	t.Run("bad_rows_are_reported_without_aborting", func(t *testing.T) {
		processor, service, db := setupCSVProcessor(t)

		path := helpers.CreateTempFile(t, []byte(brokenCSV), ".csv")

		// Only two rows reach the service; one of them is rejected by the
		// domain. The short row and the bad year never get that far.
		service.EXPECT().
			CreateWine(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params ports.CreateWineParams) (*domain.Wine, error) {
				wine, err := domain.NewWine(params.Name, params.Year, params.Volume, params.Color, params.Price)
				if err != nil {
					return nil, err
				}
				return wine, nil
			}).
			Times(2)

		var resultJSON []byte
		db.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
				if raw, ok := args[2].(json.RawMessage); ok {
					resultJSON = raw
				}
				return pgconn.CommandTag{}, nil
			}).
			Times(2)

		err := processor.ProcessCSV(ctx, newCSVTask(t, workers.CSVJobPayload{
			JobID:    "job-3",
			FilePath: path,
			Filename: "broken.csv",
		}))

		require.NoError(t, err)
		require.NotNil(t, resultJSON)

		var result workers.CSVJobResult
		require.NoError(t, json.Unmarshal(resultJSON, &result))
		assert.Equal(t, 4, result.RowsProcessed)
		assert.Equal(t, 1, result.WinesCreated)
		assert.Len(t, result.Errors, 3)
	})

	t.Run("missing_file_fails_the_job", func(t *testing.T) {
		processor, _, db := setupCSVProcessor(t)

		db.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag{}, nil).
			Times(2)

		err := processor.ProcessCSV(ctx, newCSVTask(t, workers.CSVJobPayload{
			JobID:    "job-4",
			FilePath: "/nonexistent/file.csv",
			Filename: "file.csv",
		}))

		require.Error(t, err)
	})

	t.Run("malformed_payload_is_rejected", func(t *testing.T) {
		processor, _, _ := setupCSVProcessor(t)

		err := processor.ProcessCSV(ctx, asynq.NewTask(workers.TypeCSVImport, []byte("{not json")))

		require.Error(t, err)
	})
}
