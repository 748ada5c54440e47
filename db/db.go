package db

import (
	"strconv"
	"time"

	"github.com/jsphweid/chordflow/constants"
	"github.com/jsphweid/chordflow/history"
	"github.com/jsphweid/chordflow/session"

	"github.com/aws/aws-sdk-go/aws"
	awssession "github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

type SessionSummary struct {
	ID         string
	Started    string
	NumEvents  uint
	NumChords  uint
	MostPlayed string
}

func newClient() *dynamodb.DynamoDB {
	endpoint := constants.GetDynamoEndpoint()
	if endpoint == "" {
		endpoint = "http://localhost:8001"
	}
	sess, err := awssession.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}
	return dynamodb.New(sess)
}

// Summarize reduces a finished session to the attributes worth archiving.
func Summarize(rec session.Record) SessionSummary {
	graph, err := history.Build(rec.Events)
	if err != nil {
		panic("Could not build graph for session " + rec.ID + " because " + err.Error())
	}

	mostPlayed := "-"
	best := 0
	for _, node := range graph.Nodes {
		if node.PlayCount > best {
			best = node.PlayCount
			mostPlayed = node.ID
		}
	}

	return SessionSummary{
		ID:         rec.ID,
		Started:    rec.Started.Format(time.RFC3339),
		NumEvents:  uint(len(rec.Events)),
		NumChords:  uint(len(graph.Nodes)),
		MostPlayed: mostPlayed,
	}
}

func PutSessionSummary(s SessionSummary) {
	item := map[string]*dynamodb.AttributeValue{
		"PK":         {S: aws.String(s.ID)},
		"Started":    {S: aws.String(s.Started)},
		"NumEvents":  {N: aws.String(strconv.FormatUint(uint64(s.NumEvents), 10))},
		"NumChords":  {N: aws.String(strconv.FormatUint(uint64(s.NumChords), 10))},
		"MostPlayed": {S: aws.String(s.MostPlayed)},
	}

	client := newClient()
	input := &dynamodb.PutItemInput{
		TableName: aws.String(constants.ArchiveTable),
		Item:      item,
	}
	_, err := client.PutItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}
}

func GetSessionSummaries() []SessionSummary {
	client := newClient()
	input := &dynamodb.ScanInput{
		TableName: aws.String(constants.ArchiveTable),
	}
	dbres, err := client.Scan(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	var res []SessionSummary
	for _, v := range dbres.Items {
		var s SessionSummary
		s.ID = *v["PK"].S
		s.Started = *v["Started"].S
		s.MostPlayed = *v["MostPlayed"].S
		if v["NumEvents"].N != nil {
			n, _ := strconv.ParseUint(*v["NumEvents"].N, 10, 32)
			s.NumEvents = uint(n)
		}
		if v["NumChords"].N != nil {
			n, _ := strconv.ParseUint(*v["NumChords"].N, 10, 32)
			s.NumChords = uint(n)
		}
		res = append(res, s)
	}
	return res
}
