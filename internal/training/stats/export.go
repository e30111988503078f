package stats

import (
	"fmt"

	parquetbuffer "github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

type parquetRow struct {
	ID                  string `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	UserID              string `parquet:"name=user_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	AssignmentID        string `parquet:"name=assignment_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	WorkoutCompletionID string `parquet:"name=workout_completion_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	TrainingDate        string `parquet:"name=training_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	TrainingType        string `parquet:"name=training_type, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Minutes             int32  `parquet:"name=minutes, type=INT32"`
}

// ExportParquet encodes stats as a SNAPPY compressed parquet file.
func ExportParquet(stats []TrainingTypeStat) ([]byte, error) {
	fw := parquetbuffer.NewBufferFile()
	pw, err := writer.NewParquetWriter(fw, new(parquetRow), 4)
	if err != nil {
		return nil, fmt.Errorf("new parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, s := range stats {
		row := parquetRow{
			ID:           s.ID.String(),
			UserID:       s.UserID.String(),
			AssignmentID: s.AssignmentID.String(),
			TrainingDate: s.TrainingDate.String(),
			TrainingType: s.TrainingType,
			Minutes:      int32(s.Minutes),
		}
		if s.WorkoutCompletionID != nil {
			row.WorkoutCompletionID = s.WorkoutCompletionID.String()
		}
		if err := pw.Write(row); err != nil {
			_ = pw.WriteStop()
			return nil, fmt.Errorf("write parquet row: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return nil, fmt.Errorf("finish parquet file: %w", err)
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}

	return append([]byte(nil), fw.Bytes()...), nil
}
