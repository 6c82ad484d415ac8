package vfs

func init() {
	register("cession-app",
		file("README.md", `# Cession App

Digital management of salary assignment ("cession") requests for employees and HR teams.

## Features
- Request submission with document upload
- Multi-level approval workflow
- Repayment schedule generation
- Role based dashboards

## Getting started
    npm install
    npm start
`),
		file("package.json", `{
  "name": "cession-app",
  "version": "1.0.0",
  "scripts": {
    "start": "react-scripts start",
    "build": "react-scripts build",
    "test": "react-scripts test"
  },
  "dependencies": {
    "react": "^18.2.0",
    "react-router-dom": "^6.22.0",
    "axios": "^1.6.7"
  }
}`),
		file("docker-compose.yml", `version: "3.8"
services:
  frontend:
    build: ./frontend
    ports: ["3000:3000"]
  backend:
    build: ./backend
    ports: ["8080:8080"]
    depends_on: [db]
  db:
    image: postgres:16
    environment:
      POSTGRES_DB: cession
`),
		folder("frontend",
			folder("src",
				file("App.jsx", `import { BrowserRouter, Routes, Route } from "react-router-dom";
import Dashboard from "./pages/Dashboard";

export default function App() {
  return (
    <BrowserRouter>
      <Routes>
        <Route path="/" element={<Dashboard />} />
      </Routes>
    </BrowserRouter>
  );
}`),
				folder("pages",
					file("Dashboard.jsx", `export default function Dashboard() {
  return <h1>Pending cession requests</h1>;
}`),
				),
			),
		),
		folder("backend",
			file("pom.xml", `<project>
  <groupId>com.cession</groupId>
  <artifactId>cession-api</artifactId>
  <version>1.0.0</version>
</project>`),
			folder("src",
				file("CessionController.java", `@RestController
@RequestMapping("/api/cessions")
public class CessionController {
    @GetMapping
    public List<Cession> findAll() { return service.findAll(); }
}`),
			),
		),
		file(".env.example", "API_URL=http://localhost:8080\nDB_PASSWORD=changeme\n"),
	)

	register("smart-parking",
		file("README.md", `# Smart Parking

IoT parking occupancy tracking with live availability maps.

## Stack
- ESP32 sensors publishing over MQTT
- Node.js ingestion service
- React dashboard
`),
		file("package.json", `{
  "name": "smart-parking",
  "version": "1.0.0",
  "scripts": { "start": "node server/index.js" },
  "dependencies": { "express": "^4.18.2", "mqtt": "^5.3.5", "socket.io": "^4.7.4" }
}`),
		file("docker-compose.yml", `version: "3.8"
services:
  broker:
    image: eclipse-mosquitto:2
  api:
    build: .
    ports: ["4000:4000"]
`),
		folder("server",
			file("index.js", `const express = require("express");
const app = express();
app.get("/api/spots", (req, res) => res.json(store.spots()));
app.listen(4000);`),
			file("mqtt.js", `const mqtt = require("mqtt");
const client = mqtt.connect(process.env.BROKER_URL);
client.subscribe("parking/+/occupancy");`),
		),
		folder("firmware",
			file("sensor.ino", `void loop() {
  long distance = readUltrasonic();
  publishOccupancy(distance < THRESHOLD_CM);
  delay(5000);
}`),
		),
	)

	register("e-learning-platform",
		file("README.md", `# E-Learning Platform

Course authoring, enrolment and progress tracking for online classes.

## Modules
- Courses and lessons
- Quizzes with automatic grading
- Certificates
`),
		file("package.json", `{
  "name": "e-learning-platform",
  "version": "2.1.0",
  "scripts": { "start": "ng serve" },
  "dependencies": { "@angular/core": "^17.1.0", "rxjs": "^7.8.1" }
}`),
		file("docker-compose.yml", `version: "3.8"
services:
  web:
    build: .
    ports: ["4200:4200"]
  api:
    image: e-learning-api:latest
  mongo:
    image: mongo:7
`),
		folder("src",
			folder("app",
				file("app.component.ts", `@Component({ selector: "app-root", templateUrl: "./app.component.html" })
export class AppComponent {
  title = "e-learning-platform";
}`),
				file("course.service.ts", `@Injectable({ providedIn: "root" })
export class CourseService {
  list(): Observable<Course[]> { return this.http.get<Course[]>("/api/courses"); }
}`),
			),
		),
	)

	register("devops-dashboard",
		file("README.md", `# DevOps Dashboard

Single pane of glass for CI pipelines, container health and deployment history.
`),
		file("package.json", `{
  "name": "devops-dashboard",
  "version": "0.9.0",
  "scripts": { "start": "vite" },
  "dependencies": { "vue": "^3.4.15", "chart.js": "^4.4.1" }
}`),
		file("docker-compose.yml", `version: "3.8"
services:
  dashboard:
    build: .
    ports: ["5173:5173"]
  prometheus:
    image: prom/prometheus
  grafana:
    image: grafana/grafana
`),
		folder("src",
			file("main.js", `import { createApp } from "vue";
import App from "./App.vue";
createApp(App).mount("#app");`),
			folder("components",
				file("PipelineCard.vue", `<template>
  <div class="card">{{ pipeline.name }}: {{ pipeline.status }}</div>
</template>`),
			),
		),
		folder(".github",
			folder("workflows",
				file("ci.yml", `name: CI
on: [push]
jobs:
  build:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - run: npm ci && npm run build
`),
			),
		),
	)
}
