package repository

import (
	"context"
	"time"

	"quotesmith/internal/domain/entities"
	"quotesmith/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultParametersTableName = "pricing_parameters"

type parameterItem struct {
	UserID            string             `dynamodbav:"user_id"`
	Industry          string             `dynamodbav:"industry"`
	BaseMargin        float64            `dynamodbav:"base_margin"`
	LaborMultiplier   float64            `dynamodbav:"labor_multiplier"`
	MaterialMarkup    float64            `dynamodbav:"material_markup"`
	ExperienceWeight  float64            `dynamodbav:"experience_weight"`
	RegionFactor      float64            `dynamodbav:"region_factor"`
	ComplexityFactors map[string]float64 `dynamodbav:"complexity_factors,omitempty"`
	UpdatedAt         string             `dynamodbav:"updated_at"`
}

// ParameterDynamoRepository persists per-user parameter overrides in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)
//   - SK: industry (string)
//
// One item per (user, industry); Put overwrites the previous override.

type ParameterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IParameterRepository = (*ParameterDynamoRepository)(nil)

func NewParameterDynamoRepository(ddb *dynamodb.Client) *ParameterDynamoRepository {
	return &ParameterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARAMETERS_TABLE", defaultParametersTableName),
	}
}

func (r *ParameterDynamoRepository) Get(ctx context.Context, userID, industry string) (*entities.IndustryParameters, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id":  &types.AttributeValueMemberS{Value: userID},
			"industry": &types.AttributeValueMemberS{Value: industry},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it parameterItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	p := fromParameterItem(it)
	return &p, nil
}

func (r *ParameterDynamoRepository) Put(ctx context.Context, userID, industry string, params entities.IndustryParameters) error {
	it := toParameterItem(userID, industry, params)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *ParameterDynamoRepository) Delete(ctx context.Context, userID, industry string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id":  &types.AttributeValueMemberS{Value: userID},
			"industry": &types.AttributeValueMemberS{Value: industry},
		},
	})
	return err
}

func toParameterItem(userID, industry string, p entities.IndustryParameters) parameterItem {
	return parameterItem{
		UserID:            userID,
		Industry:          industry,
		BaseMargin:        p.BaseMargin,
		LaborMultiplier:   p.LaborMultiplier,
		MaterialMarkup:    p.MaterialMarkup,
		ExperienceWeight:  p.ExperienceWeight,
		RegionFactor:      p.RegionFactor,
		ComplexityFactors: p.ComplexityFactors,
		UpdatedAt:         time.Now().UTC().Format(time.RFC3339Nano),
	}
}

func fromParameterItem(it parameterItem) entities.IndustryParameters {
	return entities.IndustryParameters{
		BaseMargin:        it.BaseMargin,
		LaborMultiplier:   it.LaborMultiplier,
		MaterialMarkup:    it.MaterialMarkup,
		ExperienceWeight:  it.ExperienceWeight,
		RegionFactor:      it.RegionFactor,
		ComplexityFactors: it.ComplexityFactors,
	}
}
