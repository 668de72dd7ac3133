package census

import (
	"context"
	"sync"
)

// sampleAddressResponse is a geographies response for a single matched
// address, shaped the way the service returns it.
const sampleAddressResponse = `{
  "result": {
    "input": {
      "address": {"address": "4600 Silver Hill Rd, Washington, DC 20233"},
      "benchmark": {
        "isDefault": true,
        "benchmarkDescription": "Public Address Ranges - Current Benchmark",
        "id": "4",
        "benchmarkName": "Public_AR_Current"
      },
      "vintage": {
        "isDefault": true,
        "id": "4",
        "vintageName": "Current_Current",
        "vintageDescription": "Current Vintage - Current Benchmark"
      }
    },
    "addressMatches": [
      {
        "tigerLine": {"side": "L", "tigerLineId": "76355984"},
        "coordinates": {"x": -76.92691, "y": 38.846542},
        "addressComponents": {
          "zip": "20233",
          "streetName": "SILVER HILL",
          "preType": "",
          "city": "WASHINGTON",
          "preDirection": "",
          "suffixDirection": "",
          "fromAddress": "4600",
          "state": "DC",
          "suffixType": "RD",
          "toAddress": "4700",
          "suffixQualifier": "",
          "preQualifier": ""
        },
        "matchedAddress": "4600 SILVER HILL RD, WASHINGTON, DC, 20233",
        "geographies": {
          "Counties": [
            {
              "GEOID": "24033",
              "CENTLAT": "+38.8362268",
              "AREAWATER": 15490089,
              "STATE": "24",
              "BASENAME": "Prince George's",
              "OID": "27590417173303",
              "LSAD": "06",
              "FUNCSTAT": "A",
              "INTPTLAT": "+38.8292451",
              "NAME": "Prince George's County",
              "OBJECTID": 49,
              "CENTLON": "-076.8467262",
              "COUNTY": "033",
              "AREALAND": 1250816886,
              "INTPTLON": "-076.8456092",
              "MTFCC": "G4020",
              "CSA": "548",
              "CBSA": "47900"
            }
          ],
          "Census Tracts": [
            {
              "GEOID": "24033802405",
              "CENTLAT": "+38.8474001",
              "AREAWATER": 0,
              "STATE": "24",
              "BASENAME": "8024.05",
              "OID": "20790277158446",
              "LSAD": "CT",
              "FUNCSTAT": "S",
              "INTPTLAT": "+38.8474001",
              "NAME": "Census Tract 8024.05",
              "OBJECTID": 23554,
              "TRACT": "802405",
              "CENTLON": "-076.9310578",
              "COUNTY": "033",
              "AREALAND": 1811733,
              "INTPTLON": "-076.9310578",
              "MTFCC": "G5020"
            }
          ]
        }
      }
    ]
  }
}`

// sampleUnmatchedResponse has no address matches, which is not an error.
const sampleUnmatchedResponse = `{
  "result": {
    "input": {
      "address": {"address": "12 Nowhere Ln"},
      "benchmark": {"id": "4", "benchmarkName": "Public_AR_Current"},
      "vintage": {"id": "4", "vintageName": "Current_Current"}
    },
    "addressMatches": []
  }
}`

// memCache is an in-memory cache.Store for tests.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	gets    int
	hits    int
	sets    int
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	body, ok := m.entries[key]
	if ok {
		m.hits++
	}
	return body, ok, nil
}

func (m *memCache) Set(_ context.Context, key string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	m.entries[key] = body
	return nil
}

func (m *memCache) Purge(context.Context) (int64, error) { return 0, nil }

func (m *memCache) Close() error { return nil }
