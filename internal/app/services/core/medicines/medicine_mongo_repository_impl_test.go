package medicines

import (
	"context"
	"net/http"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMedicineMongoRepository_DuplicateName(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Create Succeeds", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := &MedicineMongoRepository{Collection: mt.Coll}

		medicine := &models.Medicine{Name: "Paracetamol"}
		err := repo.CreateMedicine(context.Background(), medicine)

		require.NoError(mt, err)
		assert.NotEmpty(mt, medicine.ID)
	})

	mt.Run("Create Rejects Taken Name", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "E11000 duplicate key error"}))
		repo := &MedicineMongoRepository{Collection: mt.Coll}

		err := repo.CreateMedicine(context.Background(), &models.Medicine{Name: "Paracetamol"})

		assert.Equal(mt, http.StatusBadRequest, exceptions.StatusCode(err))
	})

	mt.Run("Rename Onto Taken Name", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 11000, Name: "DuplicateKey", Message: "E11000 duplicate key error"}))
		repo := &MedicineMongoRepository{Collection: mt.Coll}

		_, err := repo.Update(context.Background(), "id-1", map[string]interface{}{"name": "Paracetamol"})

		assert.Equal(mt, http.StatusBadRequest, exceptions.StatusCode(err))
	})

	mt.Run("Other Write Failures Stay Internal", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 2, Message: "bad value"}))
		repo := &MedicineMongoRepository{Collection: mt.Coll}

		err := repo.CreateMedicine(context.Background(), &models.Medicine{Name: "Paracetamol"})

		assert.Equal(mt, http.StatusInternalServerError, exceptions.StatusCode(err))
	})
}
