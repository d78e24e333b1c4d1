package appointments

import (
	"context"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/internal/pkg/utils"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	appointmentMongoRepositoryInstance contracts.AppointmentRepository
	onceAppointmentMongoRepository     sync.Once
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Database) contracts.AppointmentRepository {
	onceAppointmentMongoRepository.Do(func() {
		appointmentMongoRepositoryInstance = &AppointmentMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionAppointments),
		}
	})
	return appointmentMongoRepositoryInstance
}

var appointmentListSort = bson.D{
	{Key: "date", Value: -1},
	{Key: "time", Value: -1},
	{Key: "createdAt", Value: -1},
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) error {
	if appointmentModel.ID == "" {
		appointmentModel.ID = utils.GenerateRecordID()
	}
	appointmentModel.SetCreatedAtUpdatedAt()
	_, err := r.Collection.InsertOne(ctx, appointmentModel)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindAll(ctx context.Context, query *requests.ListQuery) ([]models.Appointment, int64, error) {
	filter := buildAppointmentFilter(query)

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	cursor, err := r.Collection.Find(ctx, filter, utils.BuildPageOptions(query, appointmentListSort))
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, total, nil
}

func (r *AppointmentMongoRepository) FindAllByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"patientId": patientID}, options.Find().SetSort(appointmentListSort))
}

// FindByDay lists one calendar day ascending by time of day. An empty
// patientID means every patient.
func (r *AppointmentMongoRepository) FindByDay(ctx context.Context, day time.Time, patientID string) ([]models.Appointment, error) {
	filter := bson.M{"date": bson.M{"$gte": day, "$lt": utils.EndOfDay(day)}}
	if patientID != "" {
		filter["patientId"] = patientID
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "time", Value: 1}, {Key: "createdAt", Value: 1}}))
}

func (r *AppointmentMongoRepository) Update(ctx context.Context, appointmentID string, fields map[string]interface{}) (*models.Appointment, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for key, value := range fields {
		set[key] = value
	}

	var appointment models.Appointment
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": appointmentID}, bson.M{"$set": set}, opts).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) DeleteByID(ctx context.Context, appointmentID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": appointmentID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) DeleteByPatientID(ctx context.Context, patientID string) (int64, error) {
	result, err := r.Collection.DeleteMany(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func (r *AppointmentMongoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func buildAppointmentFilter(query *requests.ListQuery) bson.M {
	filter := bson.M{}
	if query.Status != "" {
		filter["status"] = query.Status
	}
	if query.PatientID != "" {
		filter["patientId"] = query.PatientID
	}
	utils.ApplyDayRange(filter, "date", query)

	return utils.MergeFilters(
		filter,
		utils.BuildSearchFilter(query.Search, "purpose", "patientName", "doctorName"),
	)
}
