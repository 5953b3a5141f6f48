package ai

const matchScoreSchema = `{
  "type": "object",
  "required": ["score"],
  "properties": {
    "score": {"type": "number", "minimum": 0, "maximum": 100},
    "insights": {"type": "object"}
  }
}`

const skillRecommendationsSchema = `{
  "type": "object",
  "required": ["recommendations"],
  "properties": {
    "recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["skill"],
        "properties": {
          "skill": {"type": "string", "minLength": 1},
          "resources": {"type": "array", "items": {"type": "object"}}
        }
      }
    }
  }
}`

const jobRecommendationsSchema = `{
  "type": "object",
  "required": ["recommendations"],
  "properties": {
    "recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["project_id"],
        "properties": {
          "project_id": {"type": "string"},
          "match_score": {"type": "number"}
        }
      }
    }
  }
}`

const cvExtractionSchema = `{
  "type": "object",
  "properties": {
    "full_name": {"type": ["string", "null"]},
    "skills": {"type": ["array", "null"], "items": {"type": "string"}},
    "work_experience": {"type": ["array", "null"], "items": {"type": "object"}},
    "education": {"type": ["array", "null"], "items": {"type": "object"}}
  }
}`
