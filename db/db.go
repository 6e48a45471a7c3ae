// Package db persists named charts in DynamoDB.
package db

import (
	"errors"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/jsphweid/chordcraft/constants"
)

var ErrChartNotFound = errors.New("chart not found")

func newClient() (*dynamodb.DynamoDB, error) {
	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, err
	}
	return dynamodb.New(sess), nil
}

// GetChart fetches a chart's text body by name.
func GetChart(name string) (string, error) {
	client, err := newClient()
	if err != nil {
		return "", err
	}

	res, err := client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(constants.ChartsTable),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(name)},
		},
	})
	if err != nil {
		return "", err
	}
	if res.Item == nil || res.Item["Body"] == nil || res.Item["Body"].S == nil {
		return "", ErrChartNotFound
	}
	return *res.Item["Body"].S, nil
}

// PutChart stores a chart's text body under its name.
func PutChart(name, body string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	_, err = client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(constants.ChartsTable),
		Item: map[string]*dynamodb.AttributeValue{
			"PK":        {S: aws.String(name)},
			"Body":      {S: aws.String(body)},
			"UpdatedAt": {S: aws.String(time.Now().UTC().Format(time.RFC3339))},
		},
	})
	return err
}
